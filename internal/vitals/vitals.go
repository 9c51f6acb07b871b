// Package vitals holds the clinical measurements sent to the prediction
// service, along with their collection and validation.
package vitals

// Field names one of the measurements collected from the operator.
type Field string

const (
	FieldAge      Field = "age"
	FieldGender   Field = "gender"
	FieldImpulse  Field = "impulse"
	FieldHighBP   Field = "highbp"
	FieldLowBP    Field = "lowbp"
	FieldGlucose  Field = "glucose"
	FieldKCM      Field = "kcm"
	FieldTroponin Field = "troponin"
)

// Fields lists every measurement in declaration order. Validation and
// form layout both follow this order.
var Fields = []Field{
	FieldAge,
	FieldGender,
	FieldImpulse,
	FieldHighBP,
	FieldLowBP,
	FieldGlucose,
	FieldKCM,
	FieldTroponin,
}

// FieldInfo describes a field for display.
type FieldInfo struct {
	Label string
	Hint  string
}

var fieldInfo = map[Field]FieldInfo{
	FieldAge:      {Label: "Age", Hint: "years"},
	FieldGender:   {Label: "Gender", Hint: "1 = male, 0 = female"},
	FieldImpulse:  {Label: "Heart rate", Hint: "beats per minute"},
	FieldHighBP:   {Label: "Systolic BP", Hint: "mmHg"},
	FieldLowBP:    {Label: "Diastolic BP", Hint: "mmHg"},
	FieldGlucose:  {Label: "Blood glucose", Hint: "mg/dL"},
	FieldKCM:      {Label: "CK-MB", Hint: "ng/mL"},
	FieldTroponin: {Label: "Troponin", Hint: "ng/mL"},
}

// Info returns display metadata for f.
func (f Field) Info() FieldInfo {
	if info, ok := fieldInfo[f]; ok {
		return info
	}
	return FieldInfo{Label: string(f)}
}

// Request is the body of a prediction call. The JSON form carries exactly
// the eight measurements.
type Request struct {
	Age      float64 `json:"age"`
	Gender   float64 `json:"gender"`
	Impulse  float64 `json:"impulse"`
	HighBP   float64 `json:"highbp"`
	LowBP    float64 `json:"lowbp"`
	Glucose  float64 `json:"glucose"`
	KCM      float64 `json:"kcm"`
	Troponin float64 `json:"troponin"`
}

// Get returns the value of field f.
func (r Request) Get(f Field) float64 {
	switch f {
	case FieldAge:
		return r.Age
	case FieldGender:
		return r.Gender
	case FieldImpulse:
		return r.Impulse
	case FieldHighBP:
		return r.HighBP
	case FieldLowBP:
		return r.LowBP
	case FieldGlucose:
		return r.Glucose
	case FieldKCM:
		return r.KCM
	case FieldTroponin:
		return r.Troponin
	}
	return 0
}

// Set assigns v to field f. Unknown fields are ignored.
func (r *Request) Set(f Field, v float64) {
	switch f {
	case FieldAge:
		r.Age = v
	case FieldGender:
		r.Gender = v
	case FieldImpulse:
		r.Impulse = v
	case FieldHighBP:
		r.HighBP = v
	case FieldLowBP:
		r.LowBP = v
	case FieldGlucose:
		r.Glucose = v
	case FieldKCM:
		r.KCM = v
	case FieldTroponin:
		r.Troponin = v
	}
}
