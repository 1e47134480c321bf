// pkg/model/statistics.go
package model

// Band is a closed interval on the minutes axis.
type Band struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ControlLimits holds the control, warning, and specification limits derived
// from the target mean, together with the five-zone banding used by the
// control chart. UCL/LCL and USL/LSL coincide: both come from the ±20% band.
type ControlLimits struct {
	TargetMean float64 `json:"target_mean"`

	UCL float64 `json:"ucl"`
	LCL float64 `json:"lcl"`
	UWL float64 `json:"uwl"`
	LWL float64 `json:"lwl"`
	USL float64 `json:"usl"`
	LSL float64 `json:"lsl"`

	ZoneGreen      Band `json:"zone_green"`
	ZoneYellowLow  Band `json:"zone_yellow_low"`
	ZoneYellowHigh Band `json:"zone_yellow_high"`
	ZoneRedLow     Band `json:"zone_red_low"`
	ZoneRedHigh    Band `json:"zone_red_high"`
}

// Capability ratings keyed off Cpk.
const (
	RatingCapable           = "capable"
	RatingMarginallyCapable = "marginally capable"
	RatingNotCapable        = "not capable"
)

// Capability holds the process capability (sample variability) and process
// performance (population variability) indices. Every index is zero, not
// NaN, when the relevant standard deviation is zero.
type Capability struct {
	Cp     float64 `json:"cp"`
	Cpu    float64 `json:"cpu"`
	Cpl    float64 `json:"cpl"`
	Cpk    float64 `json:"cpk"`
	Ppu    float64 `json:"ppu"`
	Ppl    float64 `json:"ppl"`
	Ppk    float64 `json:"ppk"`
	Rating string  `json:"rating"`
}

// Statistics is the descriptive summary of one analysis window.
type Statistics struct {
	NPoints int `json:"n_points"`

	Mean          float64 `json:"mean"`
	Median        float64 `json:"median"`
	Mode          float64 `json:"mode"`
	ModeCount     int     `json:"mode_count"`
	StdSample     float64 `json:"std_sample"`
	StdPopulation float64 `json:"std_population"`

	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`

	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Range float64 `json:"range"`

	TargetMean float64 `json:"target_mean"`

	Capability Capability `json:"capability"`
}
