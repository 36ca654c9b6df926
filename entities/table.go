package entities

// namedEntities maps HTML entity names to their decoded values. This
// is a subset of the most commonly used named character references,
// not the full HTML5 table (the full table has over 2000 entries and
// is out of scope for this pluggable transform).
var namedEntities = map[string]string{
	"nbsp": " ",
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": "\"",
	"apos": "'",

	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"deg":    "°",
	"plusmn": "±",
	"cent":   "¢",
	"pound":  "£",
	"euro":   "€",
	"yen":    "¥",
	"sect":   "§",
	"para":   "¶",
	"middot": "·",
	"bull":   "•",
	"hellip": "…",
	"prime":  "′",
	"Prime":  "″",

	"ndash":  "–",
	"mdash":  "—",
	"lsquo":  "‘",
	"rsquo":  "’",
	"ldquo":  "“",
	"rdquo":  "”",
	"sbquo":  "‚",
	"bdquo":  "„",
	"laquo":  "«",
	"raquo":  "»",
	"thinsp": " ",
	"ensp":   " ",
	"emsp":   " ",

	"times":  "×",
	"divide": "÷",
	"minus":  "−",
	"lowast": "∗",
	"le":     "≤",
	"ge":     "≥",
	"ne":     "≠",
	"equiv":  "≡",
	"asymp":  "≈",
	"infin":  "∞",
	"sum":    "∑",
	"prod":   "∏",
	"radic":  "√",
	"part":   "∂",
	"int":    "∫",

	"larr": "←",
	"uarr": "↑",
	"rarr": "→",
	"darr": "↓",
	"harr": "↔",
	"lArr": "⇐",
	"uArr": "⇑",
	"rArr": "⇒",
	"dArr": "⇓",
	"hArr": "⇔",

	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"pi":      "π",
	"sigma":   "σ",
	"omega":   "ω",
	"Alpha":   "Α",
	"Beta":    "Β",
	"Gamma":   "Γ",
	"Delta":   "Δ",
	"Pi":      "Π",
	"Sigma":   "Σ",
	"Omega":   "Ω",

	"iexcl":  "¡",
	"iquest": "¿",
	"loz":    "◊",
	"spades": "♠",
	"clubs":  "♣",
	"hearts": "♥",
	"diams":  "♦",
}
