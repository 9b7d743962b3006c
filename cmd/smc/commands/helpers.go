package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/smc-io/smc-client/pkg/smc"
	"github.com/smc-io/smc-client/pkg/smcclient"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const defaultJSONIndent = "  "

// newClient builds an smc.Client from flags, environment, and config file.
// A missing client secret is prompted for without echo.
func newClient(ctx context.Context) (smc.Client, error) {
	authURL := viper.GetString("auth_url")
	if authURL == "" {
		return nil, smc.ErrAuthURLRequired
	}

	clientID := viper.GetString("client_id")
	if clientID == "" {
		return nil, smc.ErrClientIDRequired
	}

	clientSecret := viper.GetString("client_secret")
	if clientSecret == "" {
		fmt.Print("Client secret: ")

		byteSecret, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return nil, fmt.Errorf("failed to read client secret: %w", err)
		}

		clientSecret = string(byteSecret)

		fmt.Println()
	}

	credentials := smc.ClientCredentials(clientID, clientSecret)
	credentials.AccountID = viper.GetString("account_id")

	config := &smc.Config{
		AuthURL:     authURL,
		Credentials: credentials,
	}

	if viper.GetBool("verbose") {
		logger, err := newZapLogger()
		if err != nil {
			return nil, err
		}

		config.Logger = logger
		config.Debug = true
	}

	client, err := smcclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// zapLogger adapts a zap.SugaredLogger to the smc.Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger() (*zapLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &zapLogger{sugar: logger.Sugar()}, nil
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, flatten(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, flatten(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, flatten(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.sugar.Errorw(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		kv = append(kv, key, value)
	}

	return kv
}

// renderStructured prints v in the requested output format; table rendering
// is left to the caller via the render callback.
func renderStructured(v interface{}, render func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(v)
	case OutputFormatYAML:
		return yaml.NewEncoder(os.Stdout).Encode(v)
	default:
		return render()
	}
}

// renderRows prints rows as a table with the union of value columns.
func renderRows(rows []smc.Row) error {
	columns := rowColumns(rows)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(columns)

	for _, row := range rows {
		cells := make([]string, 0, len(columns))

		for _, column := range columns {
			value, ok := row.Values[column]
			if !ok {
				value = row.Keys[column]
			}

			cells = append(cells, value)
		}

		_ = table.Append(cells)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// rowColumns returns key columns first, then value columns, each group
// sorted, deduplicated across all rows.
func rowColumns(rows []smc.Row) []string {
	var columns []string

	seen := map[string]bool{}
	appendColumns := func(m map[string]string) {
		names := make([]string, 0, len(m))
		for column := range m {
			names = append(names, column)
		}

		sort.Strings(names)

		for _, column := range names {
			if !seen[column] {
				seen[column] = true

				columns = append(columns, column)
			}
		}
	}

	for _, row := range rows {
		appendColumns(row.Keys)
	}

	for _, row := range rows {
		appendColumns(row.Values)
	}

	return columns
}
