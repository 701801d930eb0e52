package model

// supportedLanguages is the fixed set of language codes both the
// translation and speech engines accept. Served as-is by the
// supported-languages endpoint; codes outside this table are still
// passed through to the engines and fail there.
var supportedLanguages = map[string]string{
	"en":    "English",
	"ta":    "Tamil",
	"hi":    "Hindi",
	"te":    "Telugu",
	"ar":    "Arabic",
	"zh-cn": "Chinese (Simplified)",
	"zh-tw": "Chinese (Traditional)",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"ja":    "Japanese",
	"ko":    "Korean",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"tr":    "Turkish",
	"vi":    "Vietnamese",
	"th":    "Thai",
	"id":    "Indonesian",
	"ms":    "Malay",
	"fil":   "Filipino",
}

// SupportedLanguages returns a copy of the language table so callers
// cannot mutate the canonical set.
func SupportedLanguages() map[string]string {
	out := make(map[string]string, len(supportedLanguages))
	for code, name := range supportedLanguages {
		out[code] = name
	}

	return out
}
