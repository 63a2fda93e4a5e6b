package mapping

// Static lookup tables for the default design system. Color keys are
// normalized 6-digit uppercase hex; size keys are exact numeric
// strings in pixels.

var colorTokens = map[string]string{
	"#FFFFFF": "colors/white",
	"#000000": "colors/black",
	"#EFF6FF": "colors/blue/50",
	"#DBEAFE": "colors/blue/100",
	"#93C5FD": "colors/blue/300",
	"#3B82F6": "colors/blue/500",
	"#2563EB": "colors/blue/600",
	"#1D4ED8": "colors/blue/700",
	"#F9FAFB": "colors/gray/50",
	"#F3F4F6": "colors/gray/100",
	"#E5E7EB": "colors/gray/200",
	"#D1D5DB": "colors/gray/300",
	"#9CA3AF": "colors/gray/400",
	"#6B7280": "colors/gray/500",
	"#4B5563": "colors/gray/600",
	"#374151": "colors/gray/700",
	"#1F2937": "colors/gray/800",
	"#111827": "colors/gray/900",
	"#FEF2F2": "colors/red/50",
	"#FCA5A5": "colors/red/300",
	"#EF4444": "colors/red/500",
	"#DC2626": "colors/red/600",
	"#F0FDF4": "colors/green/50",
	"#86EFAC": "colors/green/300",
	"#22C55E": "colors/green/500",
	"#16A34A": "colors/green/600",
	"#FFFBEB": "colors/amber/50",
	"#FCD34D": "colors/amber/300",
	"#F59E0B": "colors/amber/500",
	"#D97706": "colors/amber/600",
}

var spacingTokens = map[string]string{
	"2":  "spacing/2xs",
	"4":  "spacing/xs",
	"8":  "spacing/sm",
	"12": "spacing/md",
	"16": "spacing/lg",
	"24": "spacing/xl",
	"32": "spacing/2xl",
	"48": "spacing/3xl",
	"64": "spacing/4xl",
}

var radiusTokens = map[string]string{
	"2":    "radius/sm",
	"4":    "radius/md",
	"8":    "radius/lg",
	"12":   "radius/xl",
	"16":   "radius/2xl",
	"9999": "radius/full",
}

var fontSizeTokens = map[string]string{
	"12": "fontSize/xs",
	"14": "fontSize/sm",
	"16": "fontSize/base",
	"18": "fontSize/lg",
	"20": "fontSize/xl",
	"24": "fontSize/2xl",
	"30": "fontSize/3xl",
	"36": "fontSize/4xl",
	"48": "fontSize/5xl",
}

var fontFamilyTokens = map[string]string{
	"Inter":             "fontFamily/sans",
	"Inter, sans-serif": "fontFamily/sans",
	"Georgia":           "fontFamily/serif",
	"Georgia, serif":    "fontFamily/serif",
	"JetBrains Mono":    "fontFamily/mono",
	"Menlo, monospace":  "fontFamily/mono",
}
