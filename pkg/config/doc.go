/*
Package config reads substitution settings out of a project manifest.

	            +-------------+
	            |  Settings   |
	            | (pattern +  |
	            |  variables) |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Finds the varSubstitution section of a manifest (serverless.yml and friends)
- Resolves the delimiter, defaulting to "##"
- Turns the variables list into rules, in order

🔄 Flow:
 1. Load picks a parser by file extension
 2. The parser walks to custom.varSubstitution, ignoring everything else
 3. Each variable is kept in its union form (bare name or search/replace)
 4. Settings.Rules normalizes them for the engine

📝 Defaults:
A manifest without custom, without varSubstitution or without a pattern uses
"##". A missing variables key, or one that is not a list, means no rules.
Scalars of any type are taken by their text, so `search: 404` searches for
"404". Lists or maps where a scalar belongs fail with ErrInvalidValue.

🔍 Example:

	# serverless.yml
	custom:
	  varSubstitution:
	    pattern: "##"
	    variables:
	      - stage
	      - search: bucket
	        replace: my-bucket

	cfg, err := config.Load(ctx, "serverless.yml")
	if err != nil {
		return err
	}
	engine, err := cfg.Engine()
*/
package config
