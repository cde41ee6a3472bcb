package palette

// builtinPalettes is the curated catalog shipped with the binary.
var builtinPalettes = []Palette{
	{Name: "Clay and Sea", Likes: 965, Colors: []string{"#C84B31", "#DEB887", "#FFF8DC", "#8FBC8F", "#008B8B"}},
	{Name: "Pastel Vibes", Likes: 784, Colors: []string{"#E6F0FF", "#E0FFFF", "#FFF5EE", "#FFE4E1", "#E6E6FA"}},
	{Name: "Forest Breeze", Likes: 784, Colors: []string{"#f1ddbf", "#525e75", "#78938a", "#92ba92"}},
	{Name: "Snow Solitude", Likes: 784, Colors: []string{"#e1e4e8", "#939ca3", "#646f77", "#b5bdc4", "#aeb4ac"}},
	{Name: "Celestial Sea", Likes: 784, Colors: []string{"#809bce", "#95b8d1", "#b8e0d4", "#d6eadf", "#eac4d5"}},
	{Name: "Faded Blues", Likes: 784, Colors: []string{"#edf2fa", "#d7e3fc", "#ccdbfd", "#c1d3fe", "#abc4ff"}},
	{Name: "Earthly", Likes: 784, Colors: []string{"#d9d0b4", "#7d6b57", "#879e82", "#666b5e"}},
	{Name: "Creamish", Likes: 784, Colors: []string{"#ffeeee", "#fff6ea", "#f7e9d7", "#ebd8c3"}},
	{Name: "Ocean Blues", Likes: 554, Colors: []string{"#F0F8FF", "#B0C4DE", "#4682B4", "#000080"}},
	{Name: "Purple Dream", Likes: 489, Colors: []string{"#af92b5", "#8b7991", "#6f597a", "#624b6e", "#503d5c"}},
	{Name: "Blue Vibes", Likes: 367, Colors: []string{"#dfe2fe", "#b1cbfa", "#8e98f5", "#7971ea"}},
	{Name: "Pastel Rainbow", Likes: 672, Colors: []string{"#FFB6C1", "#FFDAB9", "#FFFFE0", "#98FB98", "#87CEEB", "#9370DB", "#DDA0DD"}},
	{Name: "Soft Pastels", Likes: 432, Colors: []string{"#F2FCE2", "#FEF7CD", "#FEC6A1", "#E5DEFF", "#FFDEE2"}},
	{Name: "Earth Tones", Likes: 345, Colors: []string{"#8E9196", "#A67B5B", "#C4A484", "#483C32", "#6B4423"}},
	{Name: "Sunset Gradient", Likes: 777, Colors: []string{"#001F3F", "#003366", "#1A237E", "#800080", "#FF69B4", "#FF6B6B", "#FFA500", "#FFD700"}},
	{Name: "Moody Sunset", Likes: 642, Colors: []string{"#001F3F", "#4B0082", "#C71585", "#FF6B6B", "#FFA500"}},
	{Name: "Vivid Mix", Likes: 398, Colors: []string{"#8B5CF6", "#D946EF", "#F97316", "#0EA5E9"}},
	{Name: "Neon Nights", Likes: 312, Colors: []string{"#FF1493", "#00FF00", "#FF4500", "#7B68EE", "#00FFFF"}},
}

// builtinThemes are the keyed theme presets.
var builtinThemes = []Theme{
	{Key: "summer", Name: "Summer Vibes", Colors: []string{"#FF6B6B", "#4ECDC4", "#FFE66D", "#FF8B94", "#98FB98"}},
	{Key: "vintage", Name: "Vintage Charm", Colors: []string{"#DEB887", "#A0522D", "#CD853F", "#DAA520", "#F5DEB3"}},
	{Key: "corporate", Name: "Corporate Professional", Colors: []string{"#1A237E", "#0D47A1", "#1565C0", "#1976D2", "#1E88E5"}},
	{Key: "forest", Name: "Forest Dream", Colors: []string{"#2E7D32", "#388E3C", "#43A047", "#4CAF50", "#66BB6A"}},
	{Key: "sunset", Name: "Sunset Glow", Colors: []string{"#FF7043", "#FF5722", "#F4511E", "#E64A19", "#D84315"}},
	{Key: "pastel", Name: "Soft Pastels", Colors: []string{"#F2FCE2", "#FEF7CD", "#FEC6A1", "#E5DEFF", "#FFDEE2"}},
	{Key: "ocean", Name: "Ocean Depths", Colors: []string{"#006064", "#00838F", "#0097A7", "#00ACC1", "#00BCD4"}},
	{Key: "autumn", Name: "Autumn Warmth", Colors: []string{"#BF360C", "#D84315", "#E64A19", "#F4511E", "#FF5722"}},
}
