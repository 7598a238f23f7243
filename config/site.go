package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type SiteContent struct {
	Name         string        `mapstructure:"name" json:"name"`
	Tagline      string        `mapstructure:"tagline" json:"tagline"`
	Address      string        `mapstructure:"address" json:"address"`
	Phone        string        `mapstructure:"phone" json:"phone"`
	Email        string        `mapstructure:"email" json:"email"`
	Services     []SiteService `mapstructure:"services" json:"services"`
	Pricing      []PriceItem   `mapstructure:"pricing" json:"pricing"`
	Team         []TeamMember  `mapstructure:"team" json:"team"`
	Testimonials []Testimonial `mapstructure:"testimonials" json:"testimonials"`
	WorkingHours []OpeningDay  `mapstructure:"working_hours" json:"workingHours"`
}

type SiteService struct {
	Title       string `mapstructure:"title" json:"title"`
	Description string `mapstructure:"description" json:"description"`
	Price       string `mapstructure:"price" json:"price"`
}

type PriceItem struct {
	Service string `mapstructure:"service" json:"service"`
	Price   string `mapstructure:"price" json:"price"`
}

type TeamMember struct {
	Name  string `mapstructure:"name" json:"name"`
	Role  string `mapstructure:"role" json:"role"`
	Image string `mapstructure:"image" json:"image"`
}

type Testimonial struct {
	Name       string `mapstructure:"name" json:"name"`
	Profession string `mapstructure:"profession" json:"profession"`
	Text       string `mapstructure:"text" json:"text"`
}

type OpeningDay struct {
	Day      string `mapstructure:"day" json:"day"`
	Hours    string `mapstructure:"hours" json:"hours"`
	IsClosed bool   `mapstructure:"is_closed" json:"isClosed"`
}

// LoadSite reads the public marketing content. A missing or broken file yields
// empty content so the back-office keeps working.
func LoadSite(path string) *SiteContent {
	site := &SiteContent{}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("site config not found, using empty site content")
		return site
	}
	if err := v.UnmarshalKey("site", site); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to unmarshal site content")
		return &SiteContent{}
	}

	return site
}
