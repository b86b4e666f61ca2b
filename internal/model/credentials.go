package model

// Credentials is a login request.
type Credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// ParseCredentials reads email and password from fields. Other keys are ignored.
func ParseCredentials(fields Fields) (Credentials, error) {
	var c Credentials
	setters := map[string]any{
		"email":    &c.Email,
		"password": &c.Password,
	}

	picked := make(Fields, len(setters))
	for key := range setters {
		if raw, ok := fields[key]; ok {
			picked[key] = raw
		}
	}
	if err := picked.decodeInto(setters); err != nil {
		return Credentials{}, err
	}
	if err := validateStruct(c); err != nil {
		return Credentials{}, err
	}
	return c, nil
}
