package cli

import (
	"github.com/IvanChernomyrdin/go-users-items-api/internal/agent/api"
)

// для тестов
var (
	NewAPIClient = api.NewClient
)
