package assessment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Education is the highest completed level of education.
type Education string

const (
	EducationNone       Education = "none"
	EducationPrimary    Education = "primary"
	EducationSecondary  Education = "secondary"
	EducationVocational Education = "vocational"
	EducationBachelor   Education = "bachelor"
	EducationMaster     Education = "master"
	EducationDoctorate  Education = "doctorate"
)

// Higher reports whether e counts as higher education.
func (e Education) Higher() bool {
	switch e {
	case EducationBachelor, EducationMaster, EducationDoctorate:
		return true
	default:
		return false
	}
}

// PersonalInfo is the demographic intake.
type PersonalInfo struct {
	Age              int       `json:"age" validate:"gte=18,lte=120"`
	Education        Education `json:"education" validate:"oneof=none primary secondary vocational bachelor master doctorate"`
	HealthConditions []string  `json:"healthConditions,omitempty" validate:"dive,max=200"`
}

var validate = validator.New()

// Validate checks the demographic constraints and reports every failing
// field.
func (p PersonalInfo) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var msgs []string
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), constraint(fe)))
	}
	return &InputError{Reason: "personal info", Err: errors.New(strings.Join(msgs, "; "))}
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
