package callout

import "testing"

func TestFillDefaults_CompletesPartialConfig(t *testing.T) {
	partial := Config{Padding: 20}

	got := partial.FillDefaults()

	if got.Padding != 20 {
		t.Errorf("Padding = %g, want explicit 20 preserved", got.Padding)
	}
	if got.MaxCallouts != DefaultConfig().MaxCallouts {
		t.Errorf("MaxCallouts = %d, want default %d", got.MaxCallouts, DefaultConfig().MaxCallouts)
	}
	if got.CalloutWidth != DefaultConfig().CalloutWidth || got.CalloutHeight != DefaultConfig().CalloutHeight {
		t.Errorf("callout size = %gx%g, want defaults", got.CalloutWidth, got.CalloutHeight)
	}
	if got.PolarAttempts != DefaultConfig().PolarAttempts || got.SpiralAttempts != DefaultConfig().SpiralAttempts {
		t.Errorf("attempt budgets = %d/%d, want defaults", got.PolarAttempts, got.SpiralAttempts)
	}
}

func TestFillDefaults_ZeroConfigEqualsDefaults(t *testing.T) {
	if got := (Config{}).FillDefaults(); got != DefaultConfig() {
		t.Errorf("FillDefaults() on zero config = %+v, want DefaultConfig", got)
	}
}

func TestFillDefaults_FullConfigUnchanged(t *testing.T) {
	full := Config{
		Padding:        1,
		Margin:         2,
		MaxCallouts:    3,
		CalloutWidth:   4,
		CalloutHeight:  5,
		MinDistance:    6,
		MaxDistance:    7,
		PolarAttempts:  8,
		SpiralAttempts: 9,
		EdgeMargin:     11,
		HeaderOffset:   12,
	}

	if got := full.FillDefaults(); got != full {
		t.Errorf("FillDefaults() = %+v, want unchanged %+v", got, full)
	}
}
