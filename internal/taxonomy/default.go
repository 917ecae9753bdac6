package taxonomy

// Default returns the built-in taxonomy. Deployments can override it from
// configuration; the shipped table covers the launch markets.
func Default() *Taxonomy {
	return &Taxonomy{
		Version: "1.0",
		Languages: []Entry{
			{Preferred: "en-US", Aliases: []string{"en", "en-US", "English", "english"}},
			{Preferred: "fr-FR", Aliases: []string{"fr", "fr-FR", "French", "french"}},
			{Preferred: "es-ES", Aliases: []string{"es", "es-ES", "Spanish", "spanish"}},
			{Preferred: "zh-CN", Aliases: []string{"zh", "zh-CN", "Chinese", "chinese", "zh-cn"}},
			{Preferred: "ja-JP", Aliases: []string{"ja", "ja-JP", "Japanese", "japanese"}},
		},
		Currencies: []Entry{
			{Preferred: "USD", Aliases: []string{"USD", "usd", "$", "US Dollar", "dollar", "dollars"}},
			{Preferred: "EUR", Aliases: []string{"EUR", "eur", "€", "Euro", "euro"}},
			{Preferred: "GBP", Aliases: []string{"GBP", "gbp", "£", "Pound", "British Pound"}},
			{Preferred: "JPY", Aliases: []string{"JPY", "jpy", "¥", "Yen", "yen", "Japanese Yen"}},
		},
		Countries: []Entry{
			{Preferred: "US", Aliases: []string{"US", "USA", "United States", "United States of America"}},
			{Preferred: "GB", Aliases: []string{"GB", "UK", "United Kingdom", "Great Britain"}},
			{Preferred: "FR", Aliases: []string{"FR", "France", "French Republic"}},
			{Preferred: "VN", Aliases: []string{"VN", "Vietnam", "Viet Nam"}},
			{Preferred: "JP", Aliases: []string{"JP", "Japan"}},
			{Preferred: "CN", Aliases: []string{"CN", "China", "PRC", "People's Republic of China"}},
			{Preferred: "DE", Aliases: []string{"DE", "Germany"}},
		},
		Interests: []Entry{
			{Preferred: "beach", Aliases: []string{"beach", "beaches", "coastal", "Beach"}},
			{Preferred: "culture", Aliases: []string{"culture", "cultural", "history", "Culture"}},
			{Preferred: "adventure", Aliases: []string{"adventure", "Adventure", "adrenaline", "extreme"}},
			{Preferred: "nature", Aliases: []string{"nature", "Nature", "wildlife", "outdoors"}},
			{Preferred: "food", Aliases: []string{"food", "Food", "cuisine", "gastronomy"}},
		},
	}
}
