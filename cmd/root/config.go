package root

import (
	"github.com/Kirov7/RidDB"
	"github.com/Kirov7/RidDB/meta"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	keyIdIndex         = "engine.idIndex"
	keyNameIndex       = "engine.nameIndex"
	keyBTreeDegree     = "engine.btreeDegree"
	keyDuplicatePolicy = "engine.duplicatePolicy"
	keyLuaPoolSize     = "engine.luaPoolSize"
	keyLogLevel        = "log.level"
	keyLogDev          = "log.dev"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyIdIndex, "bst")
	v.SetDefault(keyNameIndex, "bst")
	v.SetDefault(keyBTreeDegree, 32)
	v.SetDefault(keyDuplicatePolicy, "supersede")
	v.SetDefault(keyLuaPoolSize, 4)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogDev, false)
}

// LoadOptions convert the engine section of v into engine options
func LoadOptions(v *viper.Viper, logger *zap.Logger) (RidDB.Options, error) {
	opt := RidDB.DefaultOptions()

	idIndex, err := meta.ParseIndexType(v.GetString(keyIdIndex))
	if err != nil {
		return opt, errors.Wrapf(err, "%s %q", keyIdIndex, v.GetString(keyIdIndex))
	}
	nameIndex, err := meta.ParseIndexType(v.GetString(keyNameIndex))
	if err != nil {
		return opt, errors.Wrapf(err, "%s %q", keyNameIndex, v.GetString(keyNameIndex))
	}
	policy, err := RidDB.ParseDuplicatePolicy(v.GetString(keyDuplicatePolicy))
	if err != nil {
		return opt, err
	}

	opt.IdIndexType = idIndex
	opt.NameIndexType = nameIndex
	opt.BTreeDegree = v.GetInt(keyBTreeDegree)
	opt.DuplicatePolicy = policy
	opt.LuaPoolSize = v.GetInt(keyLuaPoolSize)
	if logger != nil {
		opt.Logger = logger
	}
	return opt, nil
}

// NewLogger build the zap logger described by the log section of v
func NewLogger(v *viper.Viper) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, errors.Wrapf(err, "%s %q", keyLogLevel, v.GetString(keyLogLevel))
	}
	config := zap.NewProductionConfig()
	if v.GetBool(keyLogDev) {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = level
	return config.Build()
}

// NewEngine open an engine configured from the global viper instance
func NewEngine() (*RidDB.Engine, *zap.Logger, error) {
	v := viper.GetViper()
	logger, err := NewLogger(v)
	if err != nil {
		return nil, nil, err
	}
	opt, err := LoadOptions(v, logger)
	if err != nil {
		return nil, nil, err
	}
	engine, err := RidDB.NewEngine(opt)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("engine ready",
		zap.String("idIndex", meta.IndexTypeName(opt.IdIndexType)),
		zap.String("nameIndex", meta.IndexTypeName(opt.NameIndexType)))
	return engine, logger, nil
}
