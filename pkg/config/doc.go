/*
Package config manages configuration parsing and validation for remaprc.

	            +-------------+
	            |   Config    |
	            | (Mapping)   |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Loads the declarative mapping table from disk
- Validates configuration values before any text is touched
- Provides type-safe config access
- Supports multiple config formats

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Validates configuration values
4. Converts the mapping into a validated rewrite.Table

⚡ Key Responsibilities:
- Configuration parsing
- Schema validation (unknown fields are rejected)
- Default value management
- Format abstraction

📝 Design Philosophy:
The config package is the source of truth for one substitution run. A
mapping record is plain data, never executed or interpolated; the only
path from config to engine goes through rewrite.Validate, so a table
with duplicate or empty search keys can never reach an operation.

🔍 Example:

	cfg, err := config.Load(ctx, ".remaprc.yaml")
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err // every offending key is listed
	}
*/
package config
