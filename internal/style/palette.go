package style

import "sort"

// palette maps colour names to hex values. Shades follow the Tailwind v3
// defaults so configuration written for the web front-end renders the same.
var palette = map[string]string{
	"white": "#ffffff",
	"black": "#000000",

	"gray-50":  "#f9fafb",
	"gray-100": "#f3f4f6",
	"gray-200": "#e5e7eb",
	"gray-300": "#d1d5db",
	"gray-400": "#9ca3af",
	"gray-500": "#6b7280",
	"gray-600": "#4b5563",
	"gray-700": "#374151",
	"gray-800": "#1f2937",
	"gray-900": "#111827",

	"yellow-50":  "#fefce8",
	"yellow-100": "#fef9c3",
	"yellow-200": "#fef08a",
	"yellow-300": "#fde047",
	"yellow-400": "#facc15",
	"yellow-500": "#eab308",
	"yellow-600": "#ca8a04",
	"yellow-700": "#a16207",
	"yellow-800": "#854d0e",
	"yellow-900": "#713f12",

	"orange-50":  "#fff7ed",
	"orange-100": "#ffedd5",
	"orange-200": "#fed7aa",
	"orange-300": "#fdba74",
	"orange-400": "#fb923c",
	"orange-500": "#f97316",
	"orange-600": "#ea580c",
	"orange-700": "#c2410c",
	"orange-800": "#9a3412",
	"orange-900": "#7c2d12",

	"purple-50":  "#faf5ff",
	"purple-100": "#f3e8ff",
	"purple-200": "#e9d5ff",
	"purple-300": "#d8b4fe",
	"purple-400": "#c084fc",
	"purple-500": "#a855f7",
	"purple-600": "#9333ea",
	"purple-700": "#7e22ce",
	"purple-800": "#6b21a8",
	"purple-900": "#581c87",

	"pink-50":  "#fdf2f8",
	"pink-100": "#fce7f3",
	"pink-200": "#fbcfe8",
	"pink-300": "#f9a8d4",
	"pink-400": "#f472b6",
	"pink-500": "#ec4899",
	"pink-600": "#db2777",
	"pink-700": "#be185d",
	"pink-800": "#9d174d",
	"pink-900": "#831843",

	"indigo-50":  "#eef2ff",
	"indigo-100": "#e0e7ff",
	"indigo-200": "#c7d2fe",
	"indigo-300": "#a5b4fc",
	"indigo-400": "#818cf8",
	"indigo-500": "#6366f1",
	"indigo-600": "#4f46e5",
	"indigo-700": "#4338ca",
	"indigo-800": "#3730a3",
	"indigo-900": "#312e81",
}

// Names returns every palette colour name, sorted.
func Names() []string {
	names := make([]string, 0, len(palette))
	for n := range palette {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
