package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	RouteAccounts        = RouteApiV1 + "/accounts"
	RouteAccountsDeleted = RouteAccounts + "/deleted"
	RouteAccount         = RouteAccounts + "/:account_id"
	RouteAccountRestore  = RouteAccount + "/restore"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
