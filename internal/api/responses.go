package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// UpgradeRequiredResponse marks denials the client should render as an
// upgrade prompt instead of a generic error.
type UpgradeRequiredResponse struct {
	Error           string `json:"error" example:"weekly workout limit reached"`
	Reason          string `json:"reason" example:"feature_limit_reached"`
	UpgradeRequired bool   `json:"upgrade_required" example:"true"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
