// Package i18n holds human-readable descriptions of mechconf status codes.
package i18n

import "strings"

// Translator describes a status code in a human language. data fills
// {placeholders} in the description (for example, "species").
type Translator interface {
	Message(code string, data map[string]string) string
}

// entries pairs each status code with its descriptions.
var entries = []struct{ code, en, ja string }{
	{"success", "parsed successfully", "正常に解析されました"},
	{"invalid_key", "key is not allowed here", "このキーは使用できません"},
	{"unknown_key", "unknown key", "未知のキーです"},
	{"required_key_not_found", "required key is missing", "必須キーが不足しています"},
	{"mutually_exclusive_option", "options cannot be given together", "同時に指定できないオプションです"},
	{"invalid_file_path", "invalid file path", "ファイルパスが不正です"},
	{"file_not_found", "file not found", "ファイルが見つかりません"},
	{"object_type_not_found", "unknown object type", "未知のオブジェクト種別です"},
	{"invalid_version", "unsupported document version", "サポートされていないバージョンです"},
	{"duplicate_species_detected", "species declared more than once", "化学種が重複しています"},
	{"duplicate_phases_detected", "phase declared more than once", "相が重複しています"},
	{"phase_requires_unknown_species", "phase lists an undeclared species", "相が未宣言の化学種を参照しています"},
	{"reaction_requires_unknown_species", "reaction uses an undeclared species", "反応が未宣言の化学種を参照しています"},
	{"unknown_phase", "phase is not declared", "相が宣言されていません"},
	{"requested_aerosol_species_not_included_in_aerosol_phase", "species is not a member of the aerosol phase", "化学種がエアロゾル相に含まれていません"},
	{"too_many_reaction_components", "too many reaction components", "反応成分が多すぎます"},
	{"invalid_ion_pair", "invalid ion pair", "イオン対が不正です"},
	{"invalid_type", "value has the wrong type", "型が不正です"},
	{"malformed_document", "document could not be decoded", "ドキュメントを解析できません"},
	{"unknown_object_type", "legacy record type {type} is not supported", "旧形式のレコード種別 {type} はサポートされていません"},
}

var dictionaries = func() map[string]map[string]string {
	en := make(map[string]string, len(entries))
	ja := make(map[string]string, len(entries))
	for _, e := range entries {
		en[e.code] = e.en
		ja[e.code] = e.ja
	}
	return map[string]map[string]string{"en": en, "ja": ja}
}()

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "ja"} }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
