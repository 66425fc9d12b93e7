package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseEm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.core")
	defer teardown()
	//
	d, err := ParseEm("0.277778em")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 0.277778 {
		t.Errorf("(1) expected d to be 0.277778em, is %s", d)
	}
	//
	d, err = ParseEm("-0.16667em")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != -0.16667 {
		t.Errorf("(2) expected d to be -0.16667em, is %s", d)
	}
	//
	d, err = ParseEm("2")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if d != 2 {
		t.Errorf("(3) expected d to be 2em, is %s", d)
	}
	//
	if _, err = ParseEm("12pt"); err == nil {
		t.Errorf("(4) expected format error for unit pt")
	}
}

func TestEmString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.core")
	defer teardown()
	//
	if s := Em(0.5).String(); s != "0.5em" {
		t.Errorf("expected 0.5em, got %s", s)
	}
	if s := Zero.String(); s != "0em" {
		t.Errorf("expected 0em, got %s", s)
	}
	if Max(-1, 0) != 0 || Min(-1, 0) != -1 {
		t.Errorf("min/max broken")
	}
}
