package faultx

import (
	"errors"
	"testing"

	"github.com/Abraxas-365/faultable/respx"
)

func TestAbortKnownCode(t *testing.T) {
	t.Parallel()

	err := Abort(404)
	if err == nil {
		t.Fatal("Abort(404) = nil, want a fault")
	}
	if !errors.Is(err, NotFound) {
		t.Errorf("errors.Is(err, NotFound) = false, want true: %v", err)
	}
}

func TestAbortForwardsOptions(t *testing.T) {
	t.Parallel()

	err := Abort(405, WithAllowed("GET"))
	f, ok := AsFault(err)
	if !ok {
		t.Fatal("Abort(405) did not return a fault")
	}
	if got := headerValues(f.Headers(), "Allow"); len(got) != 1 || got[0] != "GET" {
		t.Errorf("Allow = %v, want [GET]", got)
	}
}

func TestAbortUnknownCode(t *testing.T) {
	t.Parallel()

	err := Abort(999)
	if err == nil {
		t.Fatal("Abort(999) = nil, want an error")
	}

	var unknown *UnknownCodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("Abort(999) = %T, want *UnknownCodeError", err)
	}
	if unknown.Code != 999 {
		t.Errorf("Code = %d, want 999", unknown.Code)
	}
	if unknown.Error() != "no kind for code 999" {
		t.Errorf("Error() = %q", unknown.Error())
	}

	// Never a disguised fault.
	if _, ok := AsFault(err); ok {
		t.Error("unknown code came back as a fault")
	}
}

func TestAbortResponsePassthrough(t *testing.T) {
	t.Parallel()

	prebuilt := respx.New("already built", 200, nil)
	err := AbortResponse(prebuilt)

	f, ok := AsFault(err)
	if !ok {
		t.Fatal("AbortResponse did not return a fault")
	}
	if f.Response() != prebuilt {
		t.Error("Response() is not the prebuilt response by identity")
	}
	if !errors.Is(err, Base) {
		t.Error("errors.Is(err, Base) = false, want true")
	}
}

func TestAborterOverlay(t *testing.T) {
	t.Parallel()

	outOfCoffee := NewKind(999, "Out of coffee.")
	aborter := NewAborter(nil, map[int]*Kind{999: outOfCoffee})

	err := aborter.Abort(999)
	if !errors.Is(err, outOfCoffee) {
		t.Errorf("overlay aborter did not use the custom kind: %v", err)
	}

	// The overlay can replace built-in entries too.
	strict := NewAborter(nil, map[int]*Kind{400: SecurityError})
	if err := strict.Abort(400); !errors.Is(err, SecurityError) {
		t.Errorf("overlay did not replace the 400 entry: %v", err)
	}
}

func TestAborterOverlayIsPrivate(t *testing.T) {
	t.Parallel()

	outOfCoffee := NewKind(998, "Out of coffee.")
	_ = NewAborter(nil, map[int]*Kind{998: outOfCoffee, 404: outOfCoffee})

	// The default aborter and registry never see private overlays.
	var unknown *UnknownCodeError
	if err := Abort(998); !errors.As(err, &unknown) {
		t.Errorf("Abort(998) = %v, want *UnknownCodeError", err)
	}
	if err := Abort(404); !errors.Is(err, NotFound) {
		t.Errorf("Abort(404) = %v, want NotFound", err)
	}
	if _, ok := Registered(998); ok {
		t.Error("private overlay leaked into the registry")
	}
}

func TestAborterCopiesMapping(t *testing.T) {
	t.Parallel()

	mapping := map[int]*Kind{404: NotFound}
	aborter := NewAborter(mapping, nil)

	mapping[404] = ImATeapot
	if err := aborter.Abort(404); !errors.Is(err, NotFound) {
		t.Errorf("mutating the source mapping reached the aborter: %v", err)
	}
}
