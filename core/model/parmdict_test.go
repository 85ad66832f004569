package model

import "testing"

func TestParmDictCaseInsensitive(t *testing.T) {
	p := NewParmDict()
	p.Set("Email", "a@example.com")
	if got := p.Get("email"); got != "a@example.com" {
		t.Errorf("Get(email) = %q", got)
	}
	if got := p.Get("EMAIL"); got != "a@example.com" {
		t.Errorf("Get(EMAIL) = %q", got)
	}
	if !p.Exists("eMail") {
		t.Errorf("Exists(eMail) = false")
	}
	p.Set("email", "b@example.com")
	if got := p.Get("Email"); got != "b@example.com" {
		t.Errorf("case-variant Set did not replace: %q", got)
	}
	if p.Len() != 1 {
		t.Errorf("Len = %d, want 1", p.Len())
	}
}

func TestParmDictOrderAndDefaults(t *testing.T) {
	p := NewParmDict()
	p.Set("Fname", "Jo")
	p.Set("Lname", "Walton")
	p.Set("Response", "y")
	want := []string{"Fname", "Lname", "Response"}
	got := p.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if v := p.GetDefault("missing", "n/a"); v != "n/a" {
		t.Errorf("GetDefault = %q", v)
	}
	if p.Exists("missing") {
		t.Errorf("Exists(missing) = true")
	}
	var nilDict *ParmDict
	if nilDict.Get("x") != "" || nilDict.Exists("x") || nilDict.Len() != 0 {
		t.Errorf("nil ParmDict should behave as empty")
	}
}
