package reporting

import (
	"fmt"

	"github.com/vfg2006/cashpulse-api/internal/domain"
)

var (
	ErrCompanyRequired       = fmt.Errorf("%w: company is required", domain.ErrValidation)
	ErrCurrentPeriodRequired = fmt.Errorf("%w: current period figures are required", domain.ErrValidation)
)
