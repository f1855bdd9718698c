package lapcompare

// BrakeUnit declares the scale of the upstream brake channel. Timing
// services disagree on whether brake is a 0-1 fraction or a 0-100
// percentage; the unit is pinned from the provider schema where it declares
// one, and inferred otherwise.
type BrakeUnit string

const (
	BrakeUnitUnknown  BrakeUnit = ""
	BrakeUnitFraction BrakeUnit = "fraction"
	BrakeUnitPercent  BrakeUnit = "percent"
)

// NormalizeBrake returns a copy of t with the brake channel rescaled to the
// canonical 0-100 range. With BrakeUnitUnknown the unit is inferred: a
// channel whose maximum never exceeds 1 is treated as a fraction. The
// inference misreads partial laps where the driver genuinely never brakes
// beyond 1%, so providers that declare a unit should always pin it.
// Samples without a brake value are left untouched.
func NormalizeBrake(t Telemetry, unit BrakeUnit) Telemetry {
	if len(t) == 0 {
		return t
	}

	if unit == BrakeUnitUnknown {
		unit = inferBrakeUnit(t)
	}

	if unit != BrakeUnitFraction {
		return t
	}

	out := make(Telemetry, len(t))
	copy(out, t)

	for i := range out {
		if out[i].Brake == nil {
			continue
		}

		scaled := *out[i].Brake * 100
		out[i].Brake = &scaled
	}

	return out
}

func inferBrakeUnit(t Telemetry) BrakeUnit {
	sawBrake := false

	for _, sample := range t {
		if sample.Brake == nil {
			continue
		}

		sawBrake = true

		if *sample.Brake > 1 {
			return BrakeUnitPercent
		}
	}

	if !sawBrake {
		return BrakeUnitUnknown
	}

	return BrakeUnitFraction
}
