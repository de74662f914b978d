package logger

const (
	ColorNC        = "\x1b[0m" // No Color
	ColorGreen     = "\x1b[0;32m"
	ColorCyan      = "\x1b[0;36m"
	ColorRed       = "\x1b[0;31m"
	ColorLightRed  = "\x1b[1;31m"
	ColorLightGrey = "\x1b[0;37m"
)
