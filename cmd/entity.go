package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ripplerest/ripplerest-go/cmd/utils"
	"github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"
)

type schemaCmd struct{}

func (c *schemaCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:       "schema {entity}",
		Short:     "Prints the field table of an entity",
		Args:      cobra.ExactArgs(1),
		ValidArgs: types.EntityNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := types.FieldsOf(args[0])
			if err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), fields)
		},
	}
}

type validateCmd struct{}

func (c *validateCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:       "validate {entity} {json-file}",
		Short:     "Checks the fields of an entity read from a JSON file against their patterns",
		Args:      cobra.ExactArgs(2),
		ValidArgs: types.EntityNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := types.NewEntity(args[0])
			if err != nil {
				return err
			}
			if err := decodeEntityFile(args[1], entity); err != nil {
				return err
			}
			if err := types.Validate(entity); err != nil {
				return err
			}
			return utils.PrintJSON(cmd.OutOrStdout(), map[string]bool{"valid": true})
		},
	}
}

// decodeEntityFile decodes the JSON document at path into v.
func decodeEntityFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
