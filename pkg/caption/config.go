package caption

import "github.com/spf13/viper"

// Settings locates the caption service. All three resolve from the MOMO_*
// environment or the .momo config file read by the store config.
type Settings struct {
	BaseURL string
	APIKey  string
	Model   string
}

// LoadSettings reads caption settings with sensible defaults. An empty API
// key is allowed; the service will simply answer with an error and the
// suggester degrades to its fallback.
func LoadSettings() Settings {
	v := viper.New()
	v.SetDefault("caption_base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("caption_model", "gemini-1.5-flash")
	v.SetEnvPrefix("MOMO")
	v.AutomaticEnv()

	return Settings{
		BaseURL: v.GetString("caption_base_url"),
		APIKey:  v.GetString("caption_api_key"),
		Model:   v.GetString("caption_model"),
	}
}
