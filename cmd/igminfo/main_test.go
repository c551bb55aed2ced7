package main

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestGrid(t *testing.T) {
	wave, err := grid(3000, 6000, 100)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(wave) != 31 {
		t.Fatalf("len = %d, want 31", len(wave))
	}
	if wave[0] != 3000 || wave[30] != 6000 {
		t.Fatalf("endpoints = %g, %g", wave[0], wave[30])
	}

	for _, tc := range []struct {
		name         string
		lo, hi, step float64
	}{
		{"zero step", 1, 2, 0},
		{"negative step", 1, 2, -1},
		{"inverted", 2, 1, 0.1},
		{"too many rows", 1, 2, 1e-300},
		{"infinite range", 1, math.Inf(1), 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid(tc.lo, tc.hi, tc.step); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunTransmission(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--z", "3", "--min", "4000", "--max", "6000", "--step", "1000"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header, rule and 3 rows:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "Wave [A]") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	// 6000 A is redward of Lyman-alpha at z=3.
	if !strings.HasSuffix(lines[4], "1.000000") {
		t.Fatalf("last row %q should be fully transmitted", lines[4])
	}
}

func TestRunComponents(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--z", "6", "--min", "5000", "--max", "5000", "--components"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "LS LAF") {
		t.Fatalf("missing component header:\n%s", out.String())
	}
}

func TestRunTransitions(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--transitions"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2+39 {
		t.Fatalf("got %d lines, want 41", len(lines))
	}
	if !strings.HasPrefix(lines[2], "2 ") {
		t.Fatalf("first transition row %q should be Lyman-alpha", lines[2])
	}
}

func TestRunErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--step", "0"}, &out, &errOut); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if code := run([]string{"--step", "1e-300"}, &out, &errOut); code != 2 {
		t.Fatalf("tiny step exit code %d, want 2", code)
	}
	if code := run([]string{"--bogus"}, &out, &errOut); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if code := run([]string{"--help"}, &out, &errOut); code != 0 {
		t.Fatalf("--help exit code %d, want 0", code)
	}
}
