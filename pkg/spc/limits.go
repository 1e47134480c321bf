// pkg/spc/limits.go
package spc

import (
	"math"

	"github.com/dco-tools/changeover-spc/pkg/model"
)

// Control-limit multipliers. These are fixed properties of the target-based
// chart design, not configuration.
const (
	controlBand   = 0.2 // ±20%: control limits, coinciding with the specification limits
	warningBand   = 0.5 // ±50%: warning limits
	redCeilFactor = 3.0
	redCeilFloor  = 300 // minutes; keeps the red band visible for small targets
)

// ComputeLimits derives the control, warning, and specification limits plus
// the five-zone banding from the target mean. Lower limits clamp at zero;
// negative durations are not meaningful.
func ComputeLimits(targetMean float64) model.ControlLimits {
	return model.ControlLimits{
		TargetMean: targetMean,

		UCL: targetMean * (1 + controlBand),
		LCL: math.Max(0, targetMean*(1-controlBand)),
		UWL: targetMean * (1 + warningBand),
		LWL: math.Max(0, targetMean*(1-warningBand)),
		USL: targetMean * (1 + controlBand),
		LSL: targetMean * (1 - controlBand),

		ZoneGreen: model.Band{
			Lower: targetMean * (1 - controlBand),
			Upper: targetMean * (1 + controlBand),
		},
		ZoneYellowLow: model.Band{
			Lower: targetMean * (1 - warningBand),
			Upper: targetMean * (1 - controlBand),
		},
		ZoneYellowHigh: model.Band{
			Lower: targetMean * (1 + controlBand),
			Upper: targetMean * (1 + warningBand),
		},
		ZoneRedLow: model.Band{
			Lower: 0,
			Upper: targetMean * (1 - warningBand),
		},
		ZoneRedHigh: model.Band{
			Lower: targetMean * (1 + warningBand),
			Upper: math.Max(targetMean*redCeilFactor, redCeilFloor),
		},
	}
}
