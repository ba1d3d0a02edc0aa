package service

const (
	MonthsPerYear   = 12
	PercentDivisor  = 100.0
	ZeroRateEpsilon = 0.00001 // sustituye una tasa real exactamente cero

	// Mensajes de error expuestos por la API
	MsgInvalidParams = "Missing params or param must be a number"
	FieldsSeparator  = ", "

	cacheKeyPrefix = "retirement:calc:v1:"
)
