package services

// ServiceContainer holds instances of all the application services.
// It is built once in main and handed to the handlers.
type ServiceContainer struct {
	Session    SessionSvcFacade
	Data       DataLoaderSvc
	Conversion ConversionSvcFacade
	Display    CurrencyDisplaySvc
}
