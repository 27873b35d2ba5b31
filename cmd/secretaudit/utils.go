package secretaudit

// pick* resolve flag/config precedence: CLI value wins when it differs from
// its default, then local config, then global config.

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return 0
}

func pickInt64(cli, def int64, local, global *int64) int64 {
	if cli != def {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
