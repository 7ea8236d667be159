package domain

// Label holds the two density tiers of an axis label.
type Label struct {
	Short   string
	Verbose string
}

// TitleTable maps OTIS variable names to axis labels.
type TitleTable map[string]Label

var defaultTitles = TitleTable{
	"ACCA":     {"Axial Accel, g's", "Axial Acceleration, aA, g's"},
	"ACCN":     {"Norm Accel, g's", "Normal Acceleration, aN, g's"},
	"ACCT":     {"Total Accel, g's", "Total Acceleration, aT, g's"},
	"ALPHAD":   {"Angle Attack,deg", "Angle of Attack, alpha, degrees"},
	"ALT":      {"Altitude, ft", "Altitude, h, feet"},
	"AZMD":     {"Azimuth Ang, deg", "Azimuth Angle, azm, degrees"},
	"BETAD":    {"Sideslip Ang,deg", "Sideslip Angle, beta, degrees"},
	"CD":       {"Drag Coef,CD", "Drag Coefficient, CD"},
	"CDOT(1)":  {"Control Rate(1)", "Control Rate(1)"},
	"CDOT(2)":  {"Control Rate(2)", "Control Rate(2)"},
	"CDOT(3)":  {"Control Rate(3)", "Control Rate(3)"},
	"CL":       {"Lift Coef, CL", "Lift Coefficient, CL"},
	"DRAG":     {"Drag, lbs", "Drag, D, lbs"},
	"DVATM":    {"Drag Loss, f/s", "Drag Loss, DLoss,  f/s"},
	"DVG":      {"Gravity Loss, f/s", "Gravity Loss, gLoss, f/s"},
	"DVI":      {"Ideal Vel, f/s", "Ideal Velocity, dvi, f/s"},
	"DVTV":     {"Thr Vec Loss,f/s", "Thrust Vector Loss, TVLoss, ft/sec"},
	"GAMD":     {"FltPathAngle,deg", "Flight Path Angle, gamma, degrees"},
	"GCR":      {"Range, nm", "Great Circle Range, R, n.miles"},
	"GDALT":    {"Geodetic Alt,ft", "Geodetic Altitude, gdAlt, feet"},
	"GDLATD":   {"Geodetic Lat,deg", "Geodetic Latitude, gdLat, degrees"},
	"HA":       {"Apogee Alt, nm", "Apogee Altitude, Ha, n.miles"},
	"HP":       {"Perigee Alt, nm", "Perigee Altitude, Hp, n.miles"},
	"INCD":     {"Inclination, deg", "Inclination, inc, degrees"},
	"ISP(1)":   {"ISP(1), sec", "Specific Impulse Engine 1, ISP(1), sec"},
	"ISP(2)":   {"ISP(2), sec", "Specific Impulse Engine 2, ISP(2), sec"},
	"ISP(3)":   {"ISP(3), sec", "Specific Impulse Engine 3, ISP(3), sec"},
	"LATD":     {"Latitude, deg", "Latitude, LATD, degrees"},
	"LIFT":     {"Lift, lbs", "Lift, L, lbs"},
	"LOND":     {"Longitude, deg", "Longitude, lon, degrees"},
	"MACH":     {"Mach Number, M", "Mach Number, M"},
	"MASS":     {"Mass, slugs", "Mass, m, slugs"},
	"PHID":     {"Roll Ang, deg", "Roll Angle, phi, degrees"},
	"PSID":     {"Yaw Angle, deg", "Yaw Angle, psi, degrees"},
	"Q":        {"DynPres, psf", "Dynamic Pressure, q, psf"},
	"QALPHA":   {"qAlpha, psf-deg", "qAlpha, psf-degrees"},
	"QDOT(1)":  {"Heating Rate(1)", "Heating Rate, QDOT, btu/ft^2"},
	"RAD":      {"Radius, ft", "Radius, ft"},
	"RANC":     {"Crossrange, nm", "Crossrange, CR, n.miles"},
	"RAND":     {"Downrange, nm", "Downrange, DR, n.miles"},
	"SIGMAD":   {"Bank Angle, deg", "Bank Angle, sigma, degrees"},
	"THETAD":   {"PitchAng, deg", "Pitch Angle, theta, degrees"},
	"THRUST":   {"Thrust, lbs", "Thrust, T, lbs"},
	"TIME":     {"Time, seconds", "Time, t, seconds"},
	"TVAC(1)":  {"Tvac(1), lbs", "Engine 1 Vacumn Thrust, Tvac(1), lbs"},
	"TVAC(2)":  {"Tvac(2), lbs", "Engine 2 Vacumn Thrust, Tvac(2), lbs"},
	"TVAC(3)":  {"Tvac(3), lbs", "Engine 3 Vacumn Thrust, Tvac(3), lbs"},
	"TWALL(1)": {"Stagnation Temp", "Stagnation Temperature, Twall"},
	"VEL":      {"Velocity, f/s", "Velocity, V, f/s"},
	"WDOT":     {"Wdot, lbs/sec", "Wdot, lbs/sec"},
	"WEIGHT":   {"Weight, lbs", "Weight, W, lbs"},
}

// DefaultTitles returns a copy of the built-in label table.
func DefaultTitles() TitleTable {
	return defaultTitles.With(nil)
}

// With returns a copy of t with extra layered on top.
func (t TitleTable) With(extra TitleTable) TitleTable {
	out := make(TitleTable, len(t)+len(extra))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Title picks the axis label for name on a figure with subplots panels.
// Up to two panels get the verbose label, three or four the short one, and
// anything denser falls back to the raw variable name.
func (t TitleTable) Title(name string, subplots int) string {
	if subplots > 4 {
		return name
	}
	label, ok := t[name]
	if !ok {
		return name
	}
	title := label.Short
	if subplots <= 2 {
		title = label.Verbose
	}
	if title == "" {
		return name
	}
	return title
}

// Title resolves name against the built-in table.
func Title(name string, subplots int) string {
	return defaultTitles.Title(name, subplots)
}
