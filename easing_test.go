package scroller_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mkay581/scroller"
)

func TestEasingNamesAreFixedAndSorted(t *testing.T) {
	want := []string{"ease-in", "ease-in-out", "ease-out", "linear"}
	if diff := cmp.Diff(want, scroller.EasingNames()); diff != "" {
		t.Errorf("EasingNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsupportedEasingMessageEnumeratesRegistry(t *testing.T) {
	fx := newFixture()

	err := fx.s.ScrollTo(fx.container, &scroller.Options{Easing: "bogus"}).Err()
	want := `Scroll error: scroller does not support an easing option of "bogus". Supported options are ease-in, ease-in-out, ease-out, linear`
	if err == nil || err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestDefaultEasingIsRegistered(t *testing.T) {
	for _, name := range scroller.EasingNames() {
		if name == scroller.DefaultEasing {
			return
		}
	}
	t.Errorf("DefaultEasing %q missing from EasingNames()", scroller.DefaultEasing)
}
