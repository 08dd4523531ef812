package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// settingDescriptions are shown next to the field name in validation messages.
var settingDescriptions = map[string]string{
	"num_of_reviews_per_batch":       "the number of reviews in a batch",
	"time_between_popups_in_minutes": "the minutes between review checks",
	"wanikani_api_key":               "the WaniKani API token",
}

const (
	minSettingKey      = "min-setting"
	nonEmptySettingKey = "non-empty-setting"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}
	if err := validate.RegisterTranslation("min", trans, registerMinSetting, translateMinSetting); err != nil {
		return nil, nil, fmt.Errorf("failed to register the min translation: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate, trans, nil
}

func registerMinSetting(trans ut.Translator) error {
	if err := trans.Add(minSettingKey, "{0} must be at least {1} ({2})", true); err != nil {
		return err
	}
	return trans.Add(nonEmptySettingKey, "{0} must not be empty ({1})", true)
}

func translateMinSetting(trans ut.Translator, fe validator.FieldError) string {
	description, ok := settingDescriptions[fe.Field()]
	if !ok {
		description = fe.Field()
	}

	var message string
	var err error
	if fe.Kind() == reflect.String {
		message, err = trans.T(nonEmptySettingKey, fe.Field(), description)
	} else {
		message, err = trans.T(minSettingKey, fe.Field(), fe.Param(), description)
	}
	if err != nil {
		return fe.Error()
	}
	return message
}
