package faultx

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestBadRequestKeyBothIdentities(t *testing.T) {
	t.Parallel()

	err := BadRequestKey.New("user_id")

	if !errors.Is(err, BadRequest) {
		t.Error("errors.Is(err, BadRequest) = false, want true")
	}
	if !errors.Is(err, Base) {
		t.Error("errors.Is(err, Base) = false, want true")
	}

	var keyErr *KeyError
	if !errors.As(err, &keyErr) {
		t.Fatal("errors.As(err, *KeyError) = false, want true")
	}
	if keyErr.Key != "user_id" {
		t.Errorf("Key = %q, want %q", keyErr.Key, "user_id")
	}

	f, ok := AsFault(err)
	if !ok {
		t.Fatal("AsFault(err) = false, want true")
	}
	if f.StatusCode() != 400 {
		t.Errorf("StatusCode() = %d, want 400", f.StatusCode())
	}
}

func TestCombinedDescriptionHidesDetailByDefault(t *testing.T) {
	t.Parallel()

	f := BadRequestKey.New("q")
	if f.Description() != BadRequest.Description() {
		t.Errorf("Description() = %q, want the BadRequest default", f.Description())
	}
	if strings.Contains(f.Error(), "KeyError") {
		t.Errorf("Error() leaked the wrapped detail: %q", f.Error())
	}
}

func TestCombinedDescriptionShowsDetail(t *testing.T) {
	t.Parallel()

	f := BadRequestKey.New("q")
	f.ShowDetail = true

	want := BadRequest.Description() + "\nKeyError: \"q\""
	if got := f.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}

	// The detail is part of the rendered description, so it reaches the
	// HTML output too, escaped.
	if !strings.Contains(f.HTMLDescription(), "<br>KeyError: &#34;q&#34;</p>") {
		t.Errorf("HTMLDescription() = %q, want the appended detail", f.HTMLDescription())
	}
}

func TestCombinedDescriptionOverride(t *testing.T) {
	t.Parallel()

	f := BadRequestKey.New("q", WithDescription("Missing parameter."))
	f.ShowDetail = true

	want := "Missing parameter.\nKeyError: \"q\""
	if got := f.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}

func TestCombinedName(t *testing.T) {
	t.Parallel()

	if BadRequestKey.Name() != "BadRequestKeyError" {
		t.Errorf("Name() = %q, want %q", BadRequestKey.Name(), "BadRequestKeyError")
	}
	if BadRequestKey.Kind() != BadRequest {
		t.Error("Kind() is not BadRequest")
	}
}

func TestCombineCustom(t *testing.T) {
	t.Parallel()

	conflictRev := Combine(Conflict, "RevisionError", func(rev int) error {
		return errors.New("stale revision " + strconv.Itoa(rev))
	}).Named("StaleRevision")

	if conflictRev.Name() != "StaleRevision" {
		t.Errorf("Name() = %q, want %q", conflictRev.Name(), "StaleRevision")
	}

	err := conflictRev.New(7)
	if !errors.Is(err, Conflict) {
		t.Error("errors.Is(err, Conflict) = false, want true")
	}

	f, _ := AsFault(err)
	f.ShowDetail = true
	if want := Conflict.Description() + "\nRevisionError: stale revision 7"; f.Description() != want {
		t.Errorf("Description() = %q, want %q", f.Description(), want)
	}
}

func TestCombinedHeadersStillApply(t *testing.T) {
	t.Parallel()

	f := BadRequestKey.New("q", WithHeader("X-Missing-Key", "q"))
	if got := headerValues(f.Headers(), "X-Missing-Key"); len(got) != 1 || got[0] != "q" {
		t.Errorf("X-Missing-Key = %v, want [q]", got)
	}
}
