package predictor

// Request is a fully validated and normalized prediction payload. All string
// fields are trimmed and lowercased; Cylinders carries the "<n> cylinders"
// form the model was trained on.
type Request struct {
	Year         int64   `json:"year"`
	Odometer     float64 `json:"odometer"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Condition    string  `json:"condition"`
	Cylinders    string  `json:"cylinders"`
	Transmission string  `json:"transmission"`
}

// BuildRequest validates and normalizes an untyped JSON payload into a
// Request. Any failure is a *ValidationError; untyped values never propagate
// past this boundary.
func BuildRequest(payload map[string]interface{}) (*Request, error) {
	rawYear, err := Require(payload, "year")
	if err != nil {
		return nil, err
	}
	year, err := toInt("year", rawYear)
	if err != nil {
		return nil, err
	}

	rawOdometer, err := Require(payload, "odometer")
	if err != nil {
		return nil, err
	}
	odometer, err := toFloat("odometer", rawOdometer)
	if err != nil {
		return nil, err
	}

	manufacturer, err := Require(payload, "manufacturer", "make")
	if err != nil {
		return nil, err
	}

	model, err := Require(payload, "model")
	if err != nil {
		return nil, err
	}

	condition, err := Require(payload, "condition")
	if err != nil {
		return nil, err
	}

	transmission, err := Require(payload, "transmission")
	if err != nil {
		return nil, err
	}

	cylinders, _ := FirstOf(payload, "cylinders")

	return &Request{
		Year:         year,
		Odometer:     odometer,
		Manufacturer: NormString(manufacturer),
		Model:        NormString(model),
		Condition:    NormString(condition),
		Cylinders:    NormCylinders(cylinders),
		Transmission: NormString(transmission),
	}, nil
}
