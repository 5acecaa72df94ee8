package datatype_test

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/pkg/validate"
)

func buildErr[T any](_ T, err error) error { return err }

func TestPrimitiveValues(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr bool
	}{
		{"code simple", func() error { return buildErr(datatype.NewCodeBuilder().Value("active").Build()) }, false},
		{"code inner space", func() error { return buildErr(datatype.NewCodeBuilder().Value("in progress").Build()) }, false},
		{"code leading space", func() error { return buildErr(datatype.NewCodeBuilder().Value(" active").Build()) }, true},
		{"code double space", func() error { return buildErr(datatype.NewCodeBuilder().Value("a  b").Build()) }, true},
		{"code empty", func() error { return buildErr(datatype.NewCodeBuilder().Value("").Build()) }, true},
		{"id dotted", func() error { return buildErr(datatype.NewIDBuilder().Value("abc-1.2").Build()) }, false},
		{"id underscore", func() error { return buildErr(datatype.NewIDBuilder().Value("a_b").Build()) }, true},
		{"id too long", func() error { return buildErr(datatype.NewIDBuilder().Value(strings.Repeat("a", 65)).Build()) }, true},
		{"id max length", func() error { return buildErr(datatype.NewIDBuilder().Value(strings.Repeat("a", 64)).Build()) }, false},
		{"positiveInt zero", func() error { return buildErr(datatype.NewPositiveIntBuilder().Value(0).Build()) }, true},
		{"positiveInt one", func() error { return buildErr(datatype.NewPositiveIntBuilder().Value(1).Build()) }, false},
		{"unsignedInt zero", func() error { return buildErr(datatype.NewUnsignedIntBuilder().Value(0).Build()) }, false},
		{"unsignedInt negative", func() error { return buildErr(datatype.NewUnsignedIntBuilder().Value(-1).Build()) }, true},
		{"string empty", func() error { return buildErr(datatype.NewStringBuilder().Value("").Build()) }, true},
		{"uri with space", func() error { return buildErr(datatype.NewURIBuilder().Value("http://a b").Build()) }, true},
		{"uuid", func() error {
			return buildErr(datatype.NewUUIDBuilder().Value("urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301").Build())
		}, false},
		{"uuid without prefix", func() error {
			return buildErr(datatype.NewUUIDBuilder().Value("3f2504e0-4f89-41d3-9a0c-0305e82c3301").Build())
		}, true},
		{"date year", func() error { return buildErr(datatype.NewDateBuilder().Value("2024").Build()) }, false},
		{"date month", func() error { return buildErr(datatype.NewDateBuilder().Value("2024-02").Build()) }, false},
		{"date bad month", func() error { return buildErr(datatype.NewDateBuilder().Value("2024-13-01").Build()) }, true},
		{"date with time", func() error { return buildErr(datatype.NewDateBuilder().Value("2024-01-15T10:00:00Z").Build()) }, true},
		{"dateTime partial", func() error { return buildErr(datatype.NewDateTimeBuilder().Value("2024-01").Build()) }, false},
		{"dateTime offset", func() error {
			return buildErr(datatype.NewDateTimeBuilder().Value("2024-01-15T10:30:00+05:30").Build())
		}, false},
		{"dateTime without zone", func() error {
			return buildErr(datatype.NewDateTimeBuilder().Value("2024-01-15T10:30:00").Build())
		}, true},
		{"instant needs seconds", func() error { return buildErr(datatype.NewInstantBuilder().Value("2024-01-15").Build()) }, true},
		{"time", func() error { return buildErr(datatype.NewTimeBuilder().Value("23:59:60").Build()) }, false},
		{"time hour 24", func() error { return buildErr(datatype.NewTimeBuilder().Value("24:00:00").Build()) }, true},
		{"xhtml not div", func() error { return buildErr(datatype.NewXHTMLBuilder().Value("<p>x</p>").Build()) }, true},
		{"no value no children", func() error { return buildErr(datatype.NewStringBuilder().Build()) }, true},
		{"extension only", func() error {
			return buildErr(datatype.NewStringBuilder().
				Extension(datatype.ExtensionOf("http://example.org/ext", datatype.BooleanOf(true))).
				Build())
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInvalidValueError(t *testing.T) {
	_, err := datatype.NewPositiveIntBuilder().Value(0).Build()
	if !errors.Is(err, validate.ErrInvalidValue) {
		t.Fatalf("error = %v, want ErrInvalidValue", err)
	}
	want := "positiveInt.value: invalid value '0': must be greater than zero"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInvalidValueError_TruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 30)
	_, err := datatype.NewIDBuilder().Value(long).Build()
	if !errors.Is(err, validate.ErrInvalidValue) {
		t.Fatalf("error = %v, want ErrInvalidValue", err)
	}
	msg := err.Error()
	if !utf8.ValidString(msg) {
		t.Errorf("Error() is not valid UTF-8: %q", msg)
	}
	if !strings.Contains(msg, "'"+strings.Repeat("é", 23)+"...'") {
		t.Errorf("Error() = %q, want the value cut after 23 runes", msg)
	}
}

func TestDecimalPrecision(t *testing.T) {
	a := datatype.DecimalOf("1.50")
	b := datatype.DecimalOf("1.5")
	c := datatype.DecimalOf("1.50")

	if a.ValueString() != "1.50" {
		t.Errorf("ValueString() = %q, want %q", a.ValueString(), "1.50")
	}
	if a.Equal(b) {
		t.Error("1.50 and 1.5 compare equal")
	}
	if !a.Equal(c) {
		t.Error("1.50 and 1.50 compare unequal")
	}
	if a.Hash() != c.Hash() {
		t.Error("equal decimals hash differently")
	}
	if !a.Value().Equal(decimal.RequireFromString("1.5")) {
		t.Error("Value() lost the numeric value")
	}

	if _, err := datatype.ParseDecimal("1,5"); !errors.Is(err, validate.ErrInvalidValue) {
		t.Errorf("ParseDecimal(1,5) error = %v, want ErrInvalidValue", err)
	}
}

func TestNewUUID(t *testing.T) {
	u := datatype.NewUUID()
	if !strings.HasPrefix(u.Value(), "urn:uuid:") {
		t.Errorf("NewUUID() = %q, want urn:uuid: prefix", u.Value())
	}
	if datatype.NewUUID().Equal(u) {
		t.Error("two NewUUID() values are equal")
	}
}

func TestTemporal(t *testing.T) {
	tests := []struct {
		value string
		want  datatype.Precision
		time  time.Time
	}{
		{"2024", datatype.PrecisionYear, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03", datatype.PrecisionMonth, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-09", datatype.PrecisionDay, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{"2024-03-09T08:15:00Z", datatype.PrecisionSecond, time.Date(2024, 3, 9, 8, 15, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			dt := datatype.DateTimeOf(tt.value)
			if got := dt.Precision(); got != tt.want {
				t.Errorf("Precision() = %v, want %v", got, tt.want)
			}
			got, err := dt.Time()
			if err != nil {
				t.Fatalf("Time() error = %v", err)
			}
			if !got.Equal(tt.time) {
				t.Errorf("Time() = %v, want %v", got, tt.time)
			}
		})
	}

	ts := time.Date(2024, 3, 9, 8, 15, 0, 0, time.UTC)
	if got := datatype.DateFromTime(ts).Value(); got != "2024-03-09" {
		t.Errorf("DateFromTime() = %q", got)
	}
	if got := datatype.InstantFromTime(ts).Value(); got != "2024-03-09T08:15:00Z" {
		t.Errorf("InstantFromTime() = %q", got)
	}

	var empty *datatype.DateTime
	if _, err := empty.Time(); err == nil {
		t.Error("Time() on a nil dateTime succeeded")
	}
}
