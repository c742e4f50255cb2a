package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "heurun.dev/pkg/heurun/internal/model"
)

const (
	configBaseName   = "heurun"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "HEURUN"

	parallelFlagName   = "parallel"
	noEvaluateFlagName = "no-evaluate"
	useTesterFlagName  = "use-tester"
	plainFlagName      = "plain"
	verboseFlagName    = "verbose"

	buildEnableKey  = "build.enable"
	buildCommandKey = "build.command"

	testBinKey          = "test.bin"
	testCasesKey        = "test.cases"
	testThreadsKey      = "test.threads"
	testNoEvaluateKey   = "test.no_evaluate"
	testUseTesterKey    = "test.use_tester"
	testInDirKey        = "test.in_dir"
	testOutDirKey       = "test.out_dir"
	testVisKey          = "test.vis"
	testTesterKey       = "test.tester"
	testScoreRegexKey   = "test.score_regex"
	testCommentRegexKey = "test.comment_regex"

	reportMaxOutputKey = "report.max_output"
	reportStoreKey     = "report.store"

	defaultBuildCommand = "go build -o ./bin/solver ./solver"
	defaultBin          = "./bin/solver"
	defaultCases        = "0-9"
	defaultInDir        = "./tools/in"
	defaultOutDir       = "./tools/out"
	defaultVis          = "./tools/vis"
	defaultTester       = "./tools/tester"
	defaultScoreRegex   = `Score = (\d+)`
	defaultCommentRegex = `^# (.*)$`
	defaultMaxOutput    = 1 << 20
	defaultStoreDir     = ".heurun"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".heurun.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	initViperConfig()
}

// initViperConfig wires viper's sources and defaults. Separate from init so
// tests can rebuild a pristine configuration.
func initViperConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(buildEnableKey, true)
	viper.SetDefault(buildCommandKey, defaultBuildCommand)

	viper.SetDefault(testBinKey, defaultBin)
	viper.SetDefault(testCasesKey, defaultCases)
	viper.SetDefault(testThreadsKey, runtime.NumCPU())
	viper.SetDefault(testNoEvaluateKey, false)
	viper.SetDefault(testUseTesterKey, false)
	viper.SetDefault(testInDirKey, defaultInDir)
	viper.SetDefault(testOutDirKey, defaultOutDir)
	viper.SetDefault(testVisKey, defaultVis)
	viper.SetDefault(testTesterKey, defaultTester)
	viper.SetDefault(testScoreRegexKey, defaultScoreRegex)
	viper.SetDefault(testCommentRegexKey, defaultCommentRegex)

	viper.SetDefault(reportMaxOutputKey, defaultMaxOutput)
	viper.SetDefault(reportStoreKey, defaultStoreDir)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// resolveRunConfig builds the immutable RunConfig the core consumes. Command
// strings are parsed once here, with shell-word semantics; only the commands
// the selected mode actually needs are required to parse.
func resolveRunConfig() (m.RunConfig, error) {
	var cfg m.RunConfig

	var err error

	cfg.Build.Enable = viper.GetBool(buildEnableKey)
	if cfg.Build.Enable {
		if cfg.Build.Command, err = m.ParseCommand(viper.GetString(buildCommandKey)); err != nil {
			return m.RunConfig{}, err
		}
	}

	if cfg.Test.Bin, err = m.ParseCommand(viper.GetString(testBinKey)); err != nil {
		return m.RunConfig{}, err
	}

	cfg.Test.Threads = viper.GetInt(testThreadsKey)
	cfg.Test.NoEvaluate = viper.GetBool(testNoEvaluateKey)
	cfg.Test.UseTester = viper.GetBool(testUseTesterKey)
	cfg.Test.InDir = viper.GetString(testInDirKey)
	cfg.Test.OutDir = viper.GetString(testOutDirKey)
	cfg.Test.ScoreRegex = viper.GetString(testScoreRegexKey)
	cfg.Test.CommentRegex = viper.GetString(testCommentRegexKey)

	switch {
	case cfg.Test.NoEvaluate:
		// No scoring step, no scorer command needed.
	case cfg.Test.UseTester:
		if cfg.Test.Tester, err = m.ParseCommand(viper.GetString(testTesterKey)); err != nil {
			return m.RunConfig{}, err
		}
	default:
		if cfg.Test.Vis, err = m.ParseCommand(viper.GetString(testVisKey)); err != nil {
			return m.RunConfig{}, err
		}
	}

	cfg.Report.MaxOutput = viper.GetInt(reportMaxOutputKey)
	cfg.Report.StoreDir = viper.GetString(reportStoreKey)

	return cfg, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
