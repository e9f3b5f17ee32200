package model

// Fallback values returned whenever the model cannot produce a classification.
const (
	FallbackCategoryID  = "OTROS_GASTOS"
	FallbackCategory    = "OTROS_GASTOS"
	FallbackSubcategory = "Otros Gastos Varios"

	// FallbackResume is the resume value of every failed summary.
	FallbackResume = "ERROR"

	// DefaultLocale is used when a request carries no locale.
	DefaultLocale = "es"
)

// IAStatus tells the client how the AI part of a request went.
type IAStatus string

const (
	IAStatusSuccess       IAStatus = "SUCCESS"
	IAStatusOffline       IAStatus = "OFFLINE"        // no credential configured
	IAStatusFailed        IAStatus = "FAILED"         // the provider call itself failed
	IAStatusFailedUnknown IAStatus = "FAILED_UNKNOWN" // the provider answered with something unusable
)
