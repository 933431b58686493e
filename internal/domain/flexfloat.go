package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat — терпимое к мусору числовое поле внешнего API.
// Бэкенд отдаёт координаты то числом, то строкой, то null, то пустой строкой;
// любой неразборчивый вариант декодируется в Known=false («неизвестно»),
// а не валит декодирование всего раздела.
type FlexFloat struct {
	Value float64
	Known bool
}

// Float — конструктор известного значения (удобно в тестах и фабриках).
func Float(v float64) FlexFloat { return FlexFloat{Value: v, Known: true} }

// UnmarshalJSON — принимает число, числовую строку или null/мусор.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Value, f.Known = 0, false

	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}

	// Числовая строка: "41.715" и т.п.
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	f.Value, f.Known = v, true
	return nil
}

// MarshalJSON — неизвестное значение сериализуется как null.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Known {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
