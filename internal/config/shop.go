package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ShopProfile carries the shop identity printed on invoices and used as
// the SMS sender name. It lives in an optional reparo.yml next to the data
// directory; every field has a usable default so a fresh install works
// without any config file.
type ShopProfile struct {
	Name     string `mapstructure:"name"`
	Address  string `mapstructure:"address"`
	Phone    string `mapstructure:"phone"`
	Currency string `mapstructure:"currency"`

	InvoiceNumberTemplate string `mapstructure:"invoiceNumberTemplate"`
}

func DefaultShopProfile() ShopProfile {
	return ShopProfile{
		Name:                  "Reparo Service Center",
		Currency:              "Rp",
		InvoiceNumberTemplate: "INV-{YYYY}{MM}{DD}-{SEQ4}",
	}
}

// LoadShopProfile reads the shop section of reparo.yml, falling back to
// defaults when the file or individual keys are absent.
func LoadShopProfile(cfg Config) (ShopProfile, error) {
	v := viper.New()

	v.SetConfigName("reparo")
	v.SetConfigType("yml")
	v.AddConfigPath(cfg.DataDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("REPARO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultShopProfile()
	v.SetDefault("shop.name", defaults.Name)
	v.SetDefault("shop.address", defaults.Address)
	v.SetDefault("shop.phone", defaults.Phone)
	v.SetDefault("shop.currency", defaults.Currency)
	v.SetDefault("shop.invoiceNumberTemplate", defaults.InvoiceNumberTemplate)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return ShopProfile{}, err
		}
	}

	var profile ShopProfile
	if err := v.UnmarshalKey("shop", &profile); err != nil {
		return ShopProfile{}, err
	}

	return profile, nil
}
