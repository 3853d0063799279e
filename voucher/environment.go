package voucher

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-voucher-claim/voucher/util"
)

const envPrefix = "SWIGGY"

const DefaultClaimURL = "https://chkout.swiggy.com/swiggymoney/voucher/claim"

// Config is resolved once from the process environment. Only SWIGGY_ prefixed keys are read:
// no envconfig tags, since a tagged field also falls back to the unprefixed name.
type Config struct {
	DeviceID        string `split_words:"true" default:"your-device-id"`
	TID             string `default:"your-transaction-id"`
	Token           string `default:"your-auth-token"`
	VoucherClaimURL string `split_words:"true" default:"https://chkout.swiggy.com/swiggymoney/voucher/claim"`
	Debug           bool   `default:"false"`
}

// LoadConfig skips missing dotenv files; variables already set in the process win.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, errors.Wrapf(err, "load %s", f)
		}
		logger.Debugf("loaded %s", f)
	}

	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "read config from env")
	}
	return c, nil
}

type HeaderSet struct {
	DeviceID string
	TID      string
	Token    string
}

func (c Config) Headers() HeaderSet {
	return HeaderSet{
		DeviceID: c.DeviceID,
		TID:      c.TID,
		Token:    c.Token,
	}
}

// LogDebug dumps the raw environment and the headers that will be sent. The token is masked.
func (c Config) LogDebug() {
	logger.Debugf("SWIGGY_DEVICE_ID: %s", util.EnvOrNotSet("SWIGGY_DEVICE_ID"))
	logger.Debugf("SWIGGY_TID: %s", util.EnvOrNotSet("SWIGGY_TID"))
	if token := util.EnvOrNotSet("SWIGGY_TOKEN"); token == "NOT SET" {
		logger.Debugf("SWIGGY_TOKEN: %s", token)
	} else {
		logger.Debugf("SWIGGY_TOKEN: %s", util.Mask(token))
	}

	h := c.Headers()
	logger.WithFields(logrus.Fields{
		headerDeviceID: h.DeviceID,
		headerTID:      h.TID,
		headerToken:    util.Mask(h.Token),
	}).Debug("headers that will be used")
	logger.Debugf("claim url: %s", c.VoucherClaimURL)
}
