package matcher

import "regexp"

const (
	MinSensitivity = 1
	MaxSensitivity = 5

	// libinjection fingerprints produce false positives on ordinary prose,
	// so they only join the SQL set at the higher levels.
	libinjectionSQLLevel = 4
)

// Signature is active when its level is at or below the requested sensitivity.
type Signature struct {
	Name    string
	Level   int
	Pattern *regexp.Regexp
}

func sig(name string, level int, pattern string) Signature {
	return Signature{Name: name, Level: level, Pattern: regexp.MustCompile(pattern)}
}

// XSS patterns are case-insensitive: browsers do not care about tag case.
var xssPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<\s*/?\s*script\b`),
	regexp.MustCompile(`(?i)<[^>]*\bon[a-z]+\s*=`),
	regexp.MustCompile(`(?i)\bjavascript\s*:`),
	regexp.MustCompile(`(?i)\bvbscript\s*:`),
	regexp.MustCompile(`(?i)<\s*(?:iframe|object|embed|applet|meta|base|svg|frameset)\b`),
	regexp.MustCompile(`(?i)data\s*:\s*text/(?:html|javascript)`),
	regexp.MustCompile(`(?i)style\s*=[^>]*\bexpression\s*\(`),
}

// SQL signatures are written in lowercase and matched case-sensitively.
var sqlSignatures = []Signature{
	sig("drop_object", 1, `\b(?:drop|truncate)\s+(?:table|database|schema|view|index)\b`),
	sig("union_select", 1, `\bunion(?:\s+all)?\s+select\b`),
	sig("stacked_query", 1, `;\s*(?:drop|delete|truncate|alter|create|insert|update|exec|shutdown)\b`),
	sig("quoted_tautology", 1, `'\s*or\s+'[^']*'\s*=\s*'`),
	sig("xp_cmdshell", 1, `\bxp_cmdshell\b`),

	sig("numeric_tautology", 2, `\b(?:or|and)\s+\d+\s*=\s*\d+`),
	sig("time_based", 2, `\b(?:sleep|benchmark|pg_sleep)\s*\(|\bwaitfor\s+delay\b`),
	sig("quoted_condition", 2, `'\s*(?:or|and)\s+'?\w+'?\s*(?:=|like)`),

	sig("quote_comment", 3, `'\s*(?:--|#|/\*)`),
	sig("inline_comment", 3, `/\*.*?\*/`),
	sig("catalog_probe", 3, `\b(?:information_schema|pg_catalog|sysobjects|sqlite_master)\b`),
	sig("procedure_exec", 3, `\bexec(?:ute)?\s*\(?\s*(?:xp_|sp_)`),
	sig("dml_statement", 3, `\b(?:delete\s+from|insert\s+into|update\s+\w+\s+set|alter\s+table|create\s+table)\b`),

	sig("select_from", 4, `\bselect\b[^;]*\bfrom\b`),
	sig("trailing_comment", 4, `(?:--|#)\s*$`),

	sig("sql_keyword", 5, `\b(?:select|insert|update|delete|drop|alter|create|union|exec|grant|revoke)\b`),
	sig("comment_marker", 5, `--|/\*|\*/`),
}

// NoSQL signatures target document-query operators; lowercase and case-sensitive.
var noSQLSignatures = []Signature{
	sig("server_side_js", 1, `\$(?:where|function|accumulator)\b`),
	sig("quoted_operator", 1, `"\$(?:ne|eq|gt|gte|lt|lte|in|nin|regex|exists|expr|or|and|nor|not|elemmatch|all|size)"\s*:`),

	sig("bare_operator", 2, `\$(?:ne|eq|gt|gte|lt|lte|in|nin|regex|exists|expr|or|and|nor|not)\s*[:=]`),
	sig("bracket_operator", 2, `\[\s*\$[a-z]+\s*\]`),

	sig("shell_call", 3, `\bdb\.[a-z_]\w*\.(?:find|findone|insert|update|remove|drop|aggregate|deletemany|updatemany)\s*\(`),
	sig("query_method", 3, `\b(?:findone|findoneandupdate|findoneanddelete|insertmany|deletemany|updatemany|mapreduce)\b`),
	sig("this_comparison", 3, `\bthis\.\w+\s*(?:==|!=|>|<)`),
	sig("anonymous_function", 3, `\bfunction\s*\(\s*\)\s*\{`),

	sig("operator_key", 4, `\$[a-z]+\s*:`),
	sig("operator_object", 4, `\{\s*"?\$`),

	sig("dollar_word", 5, `\$[a-z]{2,}`),
}
