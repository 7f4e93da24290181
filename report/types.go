// Package report defines the immutable value objects and top-level
// report types produced by the parser. Nothing in this package builds
// them — that is the decode and parser packages' job — it only
// describes the shape of a fully decoded METAR or TAF.
package report

import "time"

// Wind describes a wind group. DirectionDegrees is nil for variable
// (VRB) wind; Gust is nil when no gust was reported.
type Wind struct {
	DirectionDegrees  *int
	Speed             int
	Gust              *int
	Unit              string // KT, MPS, or KMH
	VariableDirection *WindVariation
}

// WindVariation is the variable-direction group, e.g. 350V040.
type WindVariation struct {
	From int
	To   int
}

// WindShear describes a wind-shear advisory, either tied to a runway
// or reported at an altitude with its own wind value.
type WindShear struct {
	Runway   string // set when the shear is a runway advisory
	Phase    string // TKOF, LDG, or ALL
	Altitude *int   // hundreds of feet, set when the shear is altitude-based
	Wind     *Wind  // set when the shear is altitude-based
}

// Visibility describes horizontal visibility, expressed either in
// statute miles or meters, or implicitly via CAVOK.
type Visibility struct {
	DistanceValue    float64
	Unit             string // SM or M
	LessThan         bool
	GreaterThan      bool
	IsCAVOK          bool
	SpecialCondition string // e.g. "NDV"
	Direction        string // additive: compass suffix on meters visibility
}

// RunwayVisualRange describes a single runway's visual range group.
// Exactly one of {VisualRangeFeet, (VariableLow,VariableHigh)} is set,
// unless IsCleared is true, in which case neither is.
type RunwayVisualRange struct {
	Runway          string
	VisualRangeFeet *int
	VariableLow     *int
	VariableHigh    *int
	Prefix          string // P or M
	Trend           string // U, D, or N
	IsCleared       bool
}

// PresentWeather describes one decoded present-weather group. At least
// one of Descriptor, Precipitation, Obscuration, or Other is non-empty.
type PresentWeather struct {
	RawCode       string
	Intensity     string // -, +, or VC
	Descriptor    string // MI, PR, BC, DR, BL, SH, TS, FZ
	Precipitation string // e.g. RA, +TSRA's precip portion, etc.
	Obscuration   string // BR, FG, FU, VA, DU, SA, HZ, PY
	Other         string // PO, SQ, FC, SS, DS, NSW
}

// HasPrecipitation reports whether this group carries a precipitation type.
func (p PresentWeather) HasPrecipitation() bool { return p.Precipitation != "" }

// HasObscuration reports whether this group carries an obscuration type.
func (p PresentWeather) HasObscuration() bool { return p.Obscuration != "" }

// IsNoSignificantWeather reports whether this group is the literal NSW token.
func (p PresentWeather) IsNoSignificantWeather() bool { return p.Other == "NSW" }

// Sky coverage values.
const (
	CoverageFew             = "FEW"
	CoverageScattered       = "SCATTERED"
	CoverageBroken          = "BROKEN"
	CoverageOvercast        = "OVERCAST"
	CoverageSkyClear        = "SKC"
	CoverageClear           = "CLR"
	CoverageNoSignificant   = "NSC"
	CoverageVerticalVisible = "VERTICAL_VISIBILITY"
)

// SkyCondition describes one cloud layer. HeightFeet is nil when
// Coverage is SKC, CLR, or NSC.
type SkyCondition struct {
	Coverage   string
	HeightFeet *int
	CloudType  string // CB or TCU
}

// Temperature describes the temperature/dewpoint pair. DewpointCelsius
// is nil when the dewpoint was absent or sentinel in the report.
type Temperature struct {
	Celsius         int
	DewpointCelsius *int
}

// Pressure units.
const (
	UnitInchesHg     = "INCHES_HG"
	UnitHectopascals = "HECTOPASCALS"
)

// Pressure describes an altimeter setting or sea-level pressure value.
type Pressure struct {
	Value float64
	Unit  string
}

// ValidityPeriod is a TAF's overall valid-from/valid-to window.
type ValidityPeriod struct {
	ValidFrom time.Time
	ValidTo   time.Time
}

// Change indicator values for ForecastPeriod.
const (
	ChangeBase  = "BASE"
	ChangeFM    = "FM"
	ChangeTempo = "TEMPO"
	ChangeBecmg = "BECMG"
	ChangeProb  = "PROB"
)

// Conditions holds the decoded condition groups that apply within one
// forecast period.
type Conditions struct {
	Wind           *Wind
	WindShear      []WindShear
	Visibility     *Visibility
	PresentWeather []PresentWeather
	SkyConditions  []SkyCondition
}

// ForecastPeriod is one segment of a TAF: the base forecast, or a
// subsequent FM/TEMPO/BECMG/PROB change group.
type ForecastPeriod struct {
	ChangeIndicator string
	ChangeTime      *time.Time // set for FM
	PeriodStart     *time.Time // set for TEMPO/BECMG/PROB
	PeriodEnd       *time.Time // set for TEMPO/BECMG/PROB
	Probability     *int       // set for PROB (30 or 40)
	Conditions      Conditions
}

// Remark is a single decoded remarks-section entry.
type Remark struct {
	Raw         string
	Description string
}

// MetarReport is the fully decoded representation of a METAR or SPECI.
type MetarReport struct {
	StationID         string
	ReportType        string // METAR or SPECI
	ReportModifier    string // AUTO, COR, AMD, RTD, or ""
	ObservationTime   time.Time
	RawData           string
	Wind              *Wind
	WindShear         []WindShear
	Visibility        *Visibility
	Temperature       *Temperature
	Pressure          *Pressure
	SkyConditions     []SkyCondition
	PresentWeather    []PresentWeather
	RunwayVisualRange []RunwayVisualRange
	Remarks           []Remark
	UnparsedTokens    []string
}

// TafReport is the fully decoded representation of a TAF.
type TafReport struct {
	StationID          string
	ReportType         string // always TAF
	ReportModifier     string // AMD, COR, or ""
	IssueTime          time.Time
	ValidityPeriod     ValidityPeriod
	RawData            string
	ForecastPeriods    []ForecastPeriod
	MaxTemperature     *int
	MaxTemperatureTime *time.Time
	MinTemperature     *int
	MinTemperatureTime *time.Time
	Remarks            []Remark
	UnparsedTokens     []string
}
