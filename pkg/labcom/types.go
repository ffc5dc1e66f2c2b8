package labcom

import (
	"encoding/json"
	"strings"
)

// RawValue holds a scalar the API serializes inconsistently, sometimes
// as a JSON string and sometimes as a bare number. It keeps the text
// form either way.
type RawValue string

func (v *RawValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = RawValue(n.String())
	return nil
}

func (v RawValue) String() string {
	return string(v)
}

type CloudAccount struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Account struct {
	ID         int      `json:"id"`
	Forename   string   `json:"forename"`
	Surname    string   `json:"surname"`
	Email      string   `json:"email"`
	Address    string   `json:"address"`
	GPS        string   `json:"gps"`
	Volume     RawValue `json:"volume"`
	VolumeUnit string   `json:"volume_unit"`
	Pooltext   string   `json:"pooltext"`
}

// DisplayName builds the sampling point label the crew entered. Shore
// installations fill forename/surname, vessels usually only pooltext.
func (a Account) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(a.Forename) + " " + strings.TrimSpace(a.Surname))
	if name != "" {
		return name
	}
	if text := strings.TrimSpace(a.Pooltext); text != "" {
		return text
	}
	return "Unknown"
}

// ParameterInfo is the language-independent core of a parameter.
type ParameterInfo struct {
	ID        int      `json:"id"`
	NameShort string   `json:"name_short"`
	NameLong  string   `json:"name_long"`
	Unit      string   `json:"unit"`
	LimitMin  RawValue `json:"limit_min"`
	LimitMax  RawValue `json:"limit_max"`
}

type Parameter struct {
	ParameterID   int            `json:"parameter_id"`
	NameShortI18n string         `json:"name_short_i18n"`
	NameLongI18n  string         `json:"name_long_i18n"`
	LanguageID    int            `json:"language_id"`
	Parameter     *ParameterInfo `json:"Parameter"`
}

type Measurement struct {
	ID           int      `json:"id"`
	AccountID    int      `json:"account_id"`
	Account      string   `json:"account"`
	ParameterID  int      `json:"parameter_id"`
	Parameter    string   `json:"parameter"`
	Value        RawValue `json:"value"`
	Timestamp    int64    `json:"timestamp"`
	Unit         string   `json:"unit"`
	Comment      string   `json:"comment"`
	IdealLow     RawValue `json:"ideal_low"`
	IdealHigh    RawValue `json:"ideal_high"`
	IdealStatus  string   `json:"ideal_status"`
	OperatorName string   `json:"operator_name"`
	DeviceSerial string   `json:"device_serial"`
}
