package utils

const (
	AppName      = "leaseup"
	TokenIssuer  = "LeaseUp"
	DateLayout   = "2006-01-02"
	DefaultAdmin = "admin"
)
