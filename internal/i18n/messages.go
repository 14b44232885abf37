package i18n

// defaultMessages son los mensajes en inglés embebidos en el binario.
// Los archivos en locales/ pueden sobreescribirlos por idioma.
var defaultMessages = `
	[app_usage]
	other = "Refine raw backlog items into well-formed, estimated tickets"

	[app_description]
	other = "Pass backlog items as arguments, from a file or piped through stdin.\nmate-backlog sends them to the refinement service and prints the result\nas markdown or JSON."

	[refine.flag_file]
	other = "Read items from a file, one per line"

	[refine.flag_user_stories]
	other = "Ask for a user story on each refined item"

	[refine.flag_gherkin]
	other = "Ask for acceptance criteria in Gherkin style"

	[refine.flag_format]
	other = "Output format: markdown or json"

	[refine.flag_context]
	other = "Extra project context sent with the items"

	[refine.flag_no_auto_context]
	other = "Disable project context auto-detection"

	[refine.flag_key]
	other = "License key for the refinement service"

	[refine.flag_provider]
	other = "Refinement provider: api or gemini"

	[refine.no_items]
	other = "No backlog items to refine.\nPass items as arguments, use --file, or pipe them through stdin."

	[refine.file_not_found]
	other = "Could not read items file '{{.Path}}'. Check that the file exists and is readable."

	[refine.invalid_format]
	other = "Invalid format '{{.Format}}'. Use 'markdown' or 'json'."

	[refine.refining]
	one = "Refining {{.Count}} item..."
	other = "Refining {{.Count}} items..."

	[refine.auto_context_sources]
	other = "Auto-detected context from: {{.Sources}}"

	[refine.rate_limited]
	other = "Rate limit reached for your tier. Upgrade your plan or retry later."

	[refine.payload_too_large]
	other = "This batch is too large for your tier. Split it or upgrade your plan."

	[refine.api_error]
	other = "The refinement service returned an error (status {{.Status}})."

	[refine.bad_response]
	other = "Could not parse the service response. First bytes received:\n{{.Excerpt}}"

	[enforce.command_usage]
	other = "Fetch a GitHub issue, score its completeness and gate CI on a minimum score"

	[enforce.flag_issue]
	other = "Issue number to score"

	[enforce.flag_repo]
	other = "Repository in owner/name form"

	[enforce.flag_min_score]
	other = "Minimum completeness score required to pass"

	[enforce.flag_github_token]
	other = "GitHub token (defaults to the GITHUB_TOKEN environment variable)"

	[enforce.flag_key]
	other = "License key for the scoring service"

	[enforce.missing_issue]
	other = "Missing required flag --issue.\nExample: mate-backlog enforce --issue 42 --repo owner/name"

	[enforce.missing_repo]
	other = "Missing required flag --repo.\nExample: mate-backlog enforce --issue 42 --repo owner/name"

	[enforce.invalid_repo]
	other = "Invalid --repo value '{{.Repo}}'. Expected owner/name."

	[enforce.fetching]
	other = "Fetching issue #{{.Number}} from {{.Repo}}..."

	[enforce.scoring]
	other = "Scoring issue..."

	[enforce.issue_not_found]
	other = "Issue #{{.Number}} was not found in {{.Repo}}. Check the number and your access."

	[enforce.passed]
	other = "Issue passed the completeness gate"

	[enforce.failed]
	other = "Issue is below the completeness threshold"

	[enforce.score_line]
	other = "Score: {{.Score}}/100 (minimum {{.MinScore}})"

	[enforce.agent_ready]
	other = "Agent-ready: {{.Ready}}"

	[enforce.issue_line]
	other = "Issue: #{{.Number}} {{.Title}}"

	[enforce.failing_checks]
	other = "Failing checks:"

	[enforce.remediation]
	other = "Refine issue #{{.Number}} in {{.Repo}} and run the gate again."

	[config.command_usage]
	other = "Show or change the mate-backlog configuration"

	[config.show_usage]
	other = "Print the current configuration"

	[config.set_key_usage]
	other = "Save the license key for the refinement service"

	[config.set_lang_usage]
	other = "Change the interface language"

	[config.set_format_usage]
	other = "Change the default output format"

	[config.key_saved]
	other = "License key saved"

	[config.lang_saved]
	other = "Language set to {{.Lang}}"

	[config.format_saved]
	other = "Default format set to {{.Format}}"

	[config.current]
	other = "Current configuration"

	[config.not_set]
	other = "(not set)"

	[update.available]
	other = "A new version of mate-backlog is available: {{.Latest}} (you have {{.Current}})"

	[help_command_usage]
	other = "Show help"

	[factory_already_registered]
	other = "Command factory '{{.FactoryName}}' is already registered"
	`
