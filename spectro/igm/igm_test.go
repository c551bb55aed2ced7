package igm

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/spectro/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTable(t *testing.T) {
	tr := Transitions()
	if len(tr) != 39 {
		t.Fatalf("got %d transitions, want 39", len(tr))
	}
	if tr[0].Upper != 2 || tr[0].Rest != 1215.670 {
		t.Fatalf("first transition = %+v, want Lyman-alpha", tr[0])
	}
	for i := 1; i < len(tr); i++ {
		if tr[i].Upper != tr[i-1].Upper+1 {
			t.Fatalf("row %d: upper %d follows %d", i, tr[i].Upper, tr[i-1].Upper)
		}
		if tr[i].Rest >= tr[i-1].Rest || tr[i].Rest <= lymanLimit {
			t.Fatalf("row %d: rest %v out of order", i, tr[i].Rest)
		}
	}
}

func TestTransmissionRange(t *testing.T) {
	for _, z := range []float64{0.5, 1.5, 3, 4.2341, 5.5} {
		wave := testutil.LinearGrid(0.7*lymanLimit*(1+z), 1400*(1+z), 2000)
		tr := Transmission(z, wave, 1)
		for i, v := range tr {
			if !(v > 0) || v > 1+1e-12 {
				t.Fatalf("z=%v w=%v: transmission %v outside (0,1]", z, wave[i], v)
			}
			if wave[i] > 1300*(1+z) && v != 1 {
				t.Fatalf("z=%v w=%v: transmission %v redward of cutoff", z, wave[i], v)
			}
		}
	}
}

func TestRedshiftedLymanAlpha(t *testing.T) {
	const z = 4.2341

	// Just redward of Lyman-alpha nothing absorbs.
	if got := Transmission(z, []float64{6400}, 1)[0]; got != 1 {
		t.Fatalf("T(6400) = %v, want 1", got)
	}

	got := Transmission(z, []float64{6000}, 1)[0]
	if !(got > 0 && got < 1) {
		t.Fatalf("T(6000) = %v, want in (0,1)", got)
	}
}

func TestLymanAlphaOnlyRegion(t *testing.T) {
	// Between redshifted Lyman-beta and Lyman-alpha at z=3 only the
	// Lyman-alpha row contributes, in the middle LAF and upper DLA regimes.
	const z, w = 3.0, 4500.0
	x := w / 1215.670
	want := 2.35379e-3*math.Pow(x, 3.7) + 5.38995e-5*math.Pow(x, 3)

	got := OpticalDepth(z, []float64{w})[0]
	if !core.NearlyEqual(got, want, 1e-14) {
		t.Fatalf("tau = %v, want %v", got, want)
	}
}

func TestContinuumRegimes(t *testing.T) {
	// Below the redshifted Lyman limit every series row and both
	// continuum terms contribute.
	tests := []struct {
		name string
		z    float64
		w    float64
		dla  float64
		laf  float64
	}{
		{
			name: "low z",
			z:    1.0, w: 1500,
			dla: 0.2113*4 - 0.07661*math.Pow(2, 2.3)*math.Pow(1500/911.8, -0.3) - 0.1347*math.Pow(1500/911.8, 2),
			laf: 0.3248 * (math.Pow(1500/911.8, 1.2) - math.Pow(2, -0.9)*math.Pow(1500/911.8, 2.1)),
		},
		{
			name: "mid z below DLA boundary",
			z:    3.0, w: 1900,
			dla: 0.6340 + 0.04696*64 - 0.01779*math.Pow(4, 3.3)*math.Pow(1900/911.8, -0.3) -
				0.1347*math.Pow(1900/911.8, 2) - 0.2905*math.Pow(1900/911.8, -0.3),
			laf: 2.545e-2*math.Pow(4, 1.6)*math.Pow(1900/911.8, 2.1) + 0.3248*math.Pow(1900/911.8, 1.2) -
				0.2496*math.Pow(1900/911.8, 2.1),
		},
		{
			name: "mid z above LAF boundary",
			z:    3.0, w: 2500,
			dla: 0.6340 + 0.04696*64 - 0.01779*math.Pow(4, 3.3)*math.Pow(2500/911.8, -0.3) -
				0.1347*math.Pow(2500/911.8, 2) - 0.2905*math.Pow(2500/911.8, -0.3),
			laf: 2.545e-2 * (math.Pow(4, 1.6)*math.Pow(2500/911.8, 2.1) - math.Pow(2500/911.8, 3.7)),
		},
		{
			name: "high z middle band",
			z:    5.5, w: 3000,
			dla: 0.04696*math.Pow(6.5, 3) - 0.01779*math.Pow(6.5, 3.3)*math.Pow(3000/911.8, -0.3) -
				0.02916*math.Pow(3000/911.8, 3),
			laf: 5.221e-4*math.Pow(6.5, 3.4)*math.Pow(3000/911.8, 2.1) + 0.2182*math.Pow(3000/911.8, 2.1) -
				2.545e-2*math.Pow(3000/911.8, 3.7),
		},
		{
			name: "high z below low band edge",
			z:    5.5, w: 1900,
			dla: 0.6340 + 0.04696*math.Pow(6.5, 3) - 0.01779*math.Pow(6.5, 3.3)*math.Pow(1900/911.8, -0.3) -
				0.1347*math.Pow(1900/911.8, 2) - 0.2905*math.Pow(1900/911.8, -0.3),
			laf: 5.221e-4*math.Pow(6.5, 3.4)*math.Pow(1900/911.8, 2.1) + 0.3248*math.Pow(1900/911.8, 1.2) -
				3.140e-2*math.Pow(1900/911.8, 2.1),
		},
		{
			name: "high z above forest boundary",
			z:    5.5, w: 5500,
			dla: 0.04696*math.Pow(6.5, 3) - 0.01779*math.Pow(6.5, 3.3)*math.Pow(5500/911.8, -0.3) -
				0.02916*math.Pow(5500/911.8, 3),
			laf: 5.221e-4 * (math.Pow(6.5, 3.4)*math.Pow(5500/911.8, 2.1) - math.Pow(5500/911.8, 5.5)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Decompose(tt.z, []float64{tt.w})[0]
			if !core.NearlyEqual(c.ContinuumDLA, tt.dla, 1e-12) {
				t.Errorf("continuum DLA = %v, want %v", c.ContinuumDLA, tt.dla)
			}
			if !core.NearlyEqual(c.ContinuumLAF, tt.laf, 1e-12) {
				t.Errorf("continuum LAF = %v, want %v", c.ContinuumLAF, tt.laf)
			}
			if c.SeriesLAF <= 0 || c.SeriesDLA <= 0 {
				t.Errorf("series terms = %+v, want positive", c)
			}
		})
	}
}

func TestExactForestBoundaryContributesNothing(t *testing.T) {
	w := lymanLimit * (1 + z2LAF)
	if got := continuumLAF(w, 6); got != 0 {
		t.Fatalf("continuumLAF on boundary = %v, want 0", got)
	}
}

func TestMonotonicInScale(t *testing.T) {
	wave := testutil.LinearGrid(3000, 6000, 301)
	prev := Transmission(3, wave, 0)
	testutil.RequireAll(t, prev, 1, 0)

	for _, scale := range []float64{0.5, 1, 2, 4} {
		cur := Transmission(3, wave, scale)
		for i := range cur {
			if cur[i] > prev[i] {
				t.Fatalf("scale=%v w=%v: %v > %v", scale, wave[i], cur[i], prev[i])
			}
		}
		prev = cur
	}
}

func TestDecomposeMatchesOpticalDepth(t *testing.T) {
	for _, z := range []float64{0.8, 2.5, 6} {
		wave := testutil.LinearGrid(800*(1+z), 1350*(1+z), 500)
		tau := OpticalDepth(z, wave)
		comps := Decompose(z, wave)
		for i := range wave {
			if math.Abs(comps[i].Total()-tau[i]) > 1e-12*math.Max(1, tau[i]) {
				t.Fatalf("z=%v w=%v: components %v != tau %v", z, wave[i], comps[i].Total(), tau[i])
			}
		}
	}
}

func TestTransmissionTo(t *testing.T) {
	wave := []float64{3000, 4000, 5000}
	dst := make([]float64, len(wave))
	if err := TransmissionTo(dst, 3, wave, 1.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, Transmission(3, wave, 1.5), 0)

	tau := OpticalDepth(3, wave)
	for i := range wave {
		if want := math.Exp(-1.5 * tau[i]); dst[i] != want {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}

	if err := TransmissionTo(dst[:1], 3, wave, 1); !errors.Is(err, core.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestTransitionsHead(t *testing.T) {
	want := []Transition{
		{Upper: 2, Rest: 1215.67},
		{Upper: 3, Rest: 1025.72},
		{Upper: 4, Rest: 972.537},
	}
	if diff := cmp.Diff(want, Transitions()[:3], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("Transitions() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecomposeRedwardIsZero(t *testing.T) {
	// 1300 A rest at z=3 is 5200 A observed.
	got := Decompose(3, []float64{5300, 7000})
	want := []Components{{}, {}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Decompose() mismatch (-want +got):\n%s", diff)
	}
}
