package dto

import (
	"strconv"
	"strings"

	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/pkg/util"
)

const (
	msgCatwayNumber = "catwayNumber must be an integer"
	msgCatwayType   = `type must be "long" or "short"`
)

// CatwayCreateRequest is the berth creation payload.
type CatwayCreateRequest struct {
	CatwayNumber Scalar `json:"catwayNumber" form:"catwayNumber"`
	Type         Scalar `json:"type" form:"type"`
	CatwayState  Scalar `json:"catwayState" form:"catwayState"`
}

// CatwayCreate is a validated berth. Type is case-normalized to lowercase.
type CatwayCreate struct {
	CatwayNumber int
	Type         domain.CatwayType
	CatwayState  string
}

// Validate checks every field and returns either the validated value or the
// field errors in rule order.
func (r CatwayCreateRequest) Validate() (CatwayCreate, []util.FieldError) {
	var errs []util.FieldError

	number, err := strconv.Atoi(r.CatwayNumber.Trimmed())
	if err != nil {
		errs = append(errs, util.FieldError{Field: "catwayNumber", Message: msgCatwayNumber})
	}

	catwayType, ok := parseCatwayType(r.Type.Trimmed())
	if !ok {
		errs = append(errs, util.FieldError{Field: "type", Message: msgCatwayType})
	}

	if len(errs) > 0 {
		return CatwayCreate{}, errs
	}
	return CatwayCreate{
		CatwayNumber: number,
		Type:         catwayType,
		CatwayState:  r.CatwayState.Trimmed(),
	}, nil
}

// CatwayUpdateRequest is the partial-update payload; every field is
// optional.
type CatwayUpdateRequest struct {
	CatwayNumber Scalar `json:"catwayNumber" form:"catwayNumber"`
	Type         Scalar `json:"type" form:"type"`
	CatwayState  Scalar `json:"catwayState" form:"catwayState"`
}

// CatwayPatch carries the fields to overwrite. Absent or blank fields stay
// nil; a catwayNumber of zero is likewise ignored.
type CatwayPatch struct {
	CatwayNumber *int
	Type         *domain.CatwayType
	CatwayState  *string
}

// Validate applies the create rules to every supplied field.
func (r CatwayUpdateRequest) Validate() (CatwayPatch, []util.FieldError) {
	var (
		patch CatwayPatch
		errs  []util.FieldError
	)

	if !r.CatwayNumber.Empty() {
		number, err := strconv.Atoi(r.CatwayNumber.Trimmed())
		if err != nil {
			errs = append(errs, util.FieldError{Field: "catwayNumber", Message: msgCatwayNumber})
		} else if number != 0 {
			patch.CatwayNumber = &number
		}
	}

	if !r.Type.Empty() {
		catwayType, ok := parseCatwayType(r.Type.Trimmed())
		if !ok {
			errs = append(errs, util.FieldError{Field: "type", Message: msgCatwayType})
		} else {
			patch.Type = &catwayType
		}
	}

	if !r.CatwayState.Empty() {
		state := r.CatwayState.Trimmed()
		patch.CatwayState = &state
	}

	if len(errs) > 0 {
		return CatwayPatch{}, errs
	}
	return patch, nil
}

func parseCatwayType(raw string) (domain.CatwayType, bool) {
	switch domain.CatwayType(strings.ToLower(raw)) {
	case domain.CatwayTypeLong:
		return domain.CatwayTypeLong, true
	case domain.CatwayTypeShort:
		return domain.CatwayTypeShort, true
	default:
		return "", false
	}
}
