package args

import (
	"github.com/bokysan/triblock/internal/cipher"
)

type CallbackOption func(string) error

var General struct {
	Verbose               []bool         `short:"v" long:"verbose"             env:"VERBOSITY"            description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `short:"c" long:"config"              env:"CONFIG"               description:"Configuration file (yaml-formatted)" no-ini:"true"`
	LogFile               *string `short:"l" long:"log-file"            env:"LOG_FILE"             description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string  `short:"f" long:"log-format"          env:"LOG_FORMAT"           description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string  `short:"C" long:"log-color"           env:"LOG_COLOR"            description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool    `          long:"log-full-timestamp"  env:"LOG_FULL_TIMESTAMP"   description:"Display full timestamp in logs."`
	LogReportCaller       bool    `          long:"log-report-caller"   env:"LOG_REPORT_CALLER"    description:"If you wish to add the calling method as a field."`
}

// Key options have no `default` tags: values read from the configuration file would be
// overwritten by them. Zero values fall back to the reference key instead.
var Key struct {
	P       uint64 `yaml:"p"       long:"modulus-p"        env:"TRIBLOCK_P"                description:"First prime factor of the modulus (default: 1049)"`
	Q       uint64 `yaml:"q"       long:"modulus-q"        env:"TRIBLOCK_Q"                description:"Second prime factor of the modulus (default: 757)"`
	Public  uint64 `yaml:"public"  long:"public-exponent"  env:"TRIBLOCK_PUBLIC_EXPONENT"  description:"Public (encryption) exponent (default: 58777)"`
	Private uint64 `yaml:"private" long:"private-exponent" env:"TRIBLOCK_PRIVATE_EXPONENT" description:"Private (decryption) exponent. If not set, it's asked for when decrypting."`
}

// CipherKey builds the cipher key out of the key options. Modulus and public exponent fall
// back to the reference values, the private exponent stays unset if not configured.
func CipherKey() cipher.Key {
	k := cipher.Key{
		P:       Key.P,
		Q:       Key.Q,
		Public:  Key.Public,
		Private: Key.Private,
	}
	if k.P == 0 && k.Q == 0 {
		k.P, k.Q = cipher.DefaultP, cipher.DefaultQ
	}
	if k.Public == 0 {
		k.Public = cipher.DefaultPublicExponent
	}
	return k
}
