package namematch

import "testing"

func TestCanon_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"lowercase", "Smith Family", "smith family"},
		{"apostrophes stripped", "O'Brien", "obrien"},
		{"curly apostrophe stripped", "O’Brien", "obrien"},
		{"hyphens become spaces", "Garcia-Wong", "garcia wong"},
		{"punctuation stripped", "Smith. Family!", "smith family"},
		{"whitespace collapsed", "  Smith   Family ", "smith family"},
		{"diacritics folded", "Núñez", "nunez"},
		{"decomposed diacritics folded", "Núñez", "nunez"},
		{"fullwidth folded", "Ｓｍｉｔｈ", "smith"},
		{"empty", "", ""},
		{"idempotent", Canon("O'Brien-Núñez,  Family"), "obrien nunez family"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Canon(tc.in); got != tc.out {
				t.Fatalf("Canon(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestMatch_Table(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"exact", "Smith Family", "Smith Family", true},
		{"case and punctuation", "SMITH family", "Smith, Family", true},
		{"substring", "Smith", "Smith Family", true},
		{"substring reversed", "The Garcia Family", "Garcia Fam", true},
		{"surname plus given prefix", "Doe, Jon", "Doe, Jonathan", true},
		{"surname same given different", "Doe, John", "Doe, Mary", false},
		{"different surname", "Doe, John", "Smith, John", false},
		{"apostrophe variants", "O'Brien Family", "OBrien Family", true},
		{"hyphen variants", "Garcia-Wong Family", "Garcia Wong Family", true},
		{"diacritic variants", "Núñez Family", "Nunez Family", true},
		{"empty never matches", "", "Smith", false},
		{"both empty never match", "", "", false},
		{"single-char tokens ignored", "Doe, J", "Doe, K", false},
		{"given equal both sides", "Lee, Min", "Lee, Min Ho", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Match(tc.a, tc.b); got != tc.want {
				t.Fatalf("Match(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestMatch_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Smith", "Smith Family"},
		{"Doe, Jon", "Doe, Jonathan"},
		{"Garcia-Wong", "garcia wong"},
	}
	for _, p := range pairs {
		if Match(p[0], p[1]) != Match(p[1], p[0]) {
			t.Fatalf("Match not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestMatch_ConcurrentUse(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				Match("Doe, John", "Doe, Jonathan")
				Canon("O'Brien-Núñez Family")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
