package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyConfigFile string = "ACCUPORT_CONFIG"

	LoggerNameFleetCore     string = "fleet_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameFetcher       string = "datafetcher"
	LoggerNameCLI           string = "cli"

	LoggerFieldCategory string = "category"

	LoggerCategoryAlert       string = "alert"
	LoggerCategoryMeasurement string = "measurement"
	LoggerCategoryLimit       string = "limit"
	LoggerCategoryUser        string = "user"
	LoggerCategoryVessel      string = "vessel"
	LoggerCategoryAuth        string = "auth"
	LoggerCategorySync        string = "sync"
	LoggerCategoryReport      string = "report"
	LoggerCategoryMail        string = "mail"
)
