package catalog

// builtinTools is the registry shipped with the binary. Order is display order.
var builtinTools = []Descriptor{
	// ═══════════════════════════════════════════════════════════════
	// UTILITIES
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "qr-code-generator",
		Name:        "QR Code Generator",
		Description: "Turn links, text or contact cards into a downloadable QR code",
		Path:        "/tools/qr-code-generator",
		Category:    CategoryUtilities,
		Icon:        "QrCode",
		Tags:        []string{"qr", "code", "generator", "barcode", "link", "scan"},
		Featured:    true,
		IsFeatured:  true,
	},
	{
		ID:          "bmi-calculator",
		Name:        "BMI Calculator",
		Description: "Calculate body mass index from height and weight in metric or imperial units",
		Path:        "/tools/bmi-calculator",
		Category:    CategoryUtilities,
		Icon:        "Calculator",
		Tags:        []string{"bmi", "health", "calculator", "weight", "height"},
	},
	{
		ID:          "age-calculator",
		Name:        "Age Calculator",
		Description: "Work out an exact age in years, months and days between two dates",
		Path:        "/tools/age-calculator",
		Category:    CategoryUtilities,
		Icon:        "Calendar",
		Tags:        []string{"age", "date", "birthday", "calculator"},
	},
	{
		ID:          "unit-converter",
		Name:        "Unit Converter",
		Description: "Convert length, mass, temperature and volume between common units",
		Path:        "/tools/unit-converter",
		Category:    CategoryUtilities,
		Icon:        "Ruler",
		Tags:        []string{"unit", "converter", "length", "temperature", "metric"},
	},
	{
		ID:          "percentage-calculator",
		Name:        "Percentage Calculator",
		Description: "Find percentages, percentage change and ratios in one place",
		Path:        "/tools/percentage-calculator",
		Category:    CategoryUtilities,
		Icon:        "Percent",
		Tags:        []string{"percentage", "calculator", "math", "ratio"},
	},
	{
		ID:          "url-shortener",
		Name:        "URL Shortener",
		Description: "Create compact links ready to share or print as a qr code",
		Path:        "/tools/url-shortener",
		Category:    CategoryUtilities,
		Icon:        "Link",
		Tags:        []string{"url", "link", "short", "share"},
	},
	{
		ID:          "stopwatch",
		Name:        "Online Stopwatch",
		Description: "Browser stopwatch with lap times and keyboard shortcuts",
		Path:        "/tools/stopwatch",
		Category:    CategoryUtilities,
		Icon:        "Timer",
		Tags:        []string{"timer", "stopwatch", "lap", "time"},
		IsNew:       true,
	},

	// ═══════════════════════════════════════════════════════════════
	// SEO
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "meta-tag-generator",
		Name:        "Meta Tag Generator",
		Description: "Build title, description and Open Graph meta tags for a page",
		Path:        "/tools/meta-tag-generator",
		Category:    CategorySEO,
		Icon:        "Tags",
		Tags:        []string{"meta", "tags", "seo", "open graph", "html"},
		Featured:    true,
	},
	{
		ID:          "keyword-density-checker",
		Name:        "Keyword Density Checker",
		Description: "Count how often each keyword appears in a block of copy",
		Path:        "/tools/keyword-density-checker",
		Category:    CategorySEO,
		Icon:        "BarChart2",
		Tags:        []string{"keyword", "density", "seo", "content"},
	},
	{
		ID:          "robots-txt-generator",
		Name:        "Robots.txt Generator",
		Description: "Compose allow and disallow rules for search engine crawlers",
		Path:        "/tools/robots-txt-generator",
		Category:    CategorySEO,
		Icon:        "Bot",
		Tags:        []string{"robots", "crawler", "seo", "sitemap"},
	},
	{
		ID:          "sitemap-generator",
		Name:        "XML Sitemap Generator",
		Description: "Produce a sitemap.xml from a list of page URLs",
		Path:        "/tools/sitemap-generator",
		Category:    CategorySEO,
		Icon:        "Network",
		Tags:        []string{"sitemap", "xml", "seo", "urls"},
	},
	{
		ID:          "serp-preview",
		Name:        "SERP Snippet Preview",
		Description: "Preview how a title and description render in search results",
		Path:        "/tools/serp-preview",
		Category:    CategorySEO,
		Icon:        "Search",
		Tags:        []string{"serp", "preview", "seo", "snippet"},
		IsNew:       true,
	},

	// ═══════════════════════════════════════════════════════════════
	// IMAGE
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "image-compressor",
		Name:        "Image Compressor",
		Description: "Shrink JPEG and PNG files in the browser with an adjustable quality slider",
		Path:        "/tools/image-compressor",
		Category:    CategoryImage,
		Icon:        "Image",
		Tags:        []string{"image", "compress", "jpeg", "png", "optimize"},
		Featured:    true,
		IsFeatured:  true,
	},
	{
		ID:          "image-resizer",
		Name:        "Image Resizer",
		Description: "Resize pictures to exact pixel dimensions or a percentage",
		Path:        "/tools/image-resizer",
		Category:    CategoryImage,
		Icon:        "Maximize",
		Tags:        []string{"image", "resize", "dimensions", "scale"},
	},
	{
		ID:          "image-to-base64",
		Name:        "Image to Base64",
		Description: "Encode an image file as a base64 data URI",
		Path:        "/tools/image-to-base64",
		Category:    CategoryImage,
		Icon:        "FileImage",
		Tags:        []string{"image", "base64", "data uri", "encode"},
	},
	{
		ID:          "png-to-jpg",
		Name:        "PNG to JPG Converter",
		Description: "Convert transparent PNG images to JPG with a chosen background",
		Path:        "/tools/png-to-jpg",
		Category:    CategoryImage,
		Icon:        "RefreshCw",
		Tags:        []string{"png", "jpg", "convert", "image"},
	},
	{
		ID:          "image-cropper",
		Name:        "Image Cropper",
		Description: "Crop photos to free-form or fixed aspect ratios",
		Path:        "/tools/image-cropper",
		Category:    CategoryImage,
		Icon:        "Crop",
		Tags:        []string{"crop", "image", "aspect ratio", "photo"},
	},
	{
		ID:          "gif-maker",
		Name:        "GIF Maker",
		Description: "Sequence still frames into an animated preview",
		Path:        "/tools/gif-maker",
		Category:    CategoryImage,
		Icon:        "Film",
		Tags:        []string{"gif", "animation", "frames", "image"},
		IsNew:       true,
	},

	// ═══════════════════════════════════════════════════════════════
	// TEXT
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "word-counter",
		Name:        "Word Counter",
		Description: "Count words, characters, sentences and reading time",
		Path:        "/tools/word-counter",
		Category:    CategoryText,
		Icon:        "FileText",
		Tags:        []string{"word", "count", "characters", "text"},
		Featured:    true,
	},
	{
		ID:          "case-converter",
		Name:        "Case Converter",
		Description: "Switch text between upper, lower, title and sentence case",
		Path:        "/tools/case-converter",
		Category:    CategoryText,
		Icon:        "Type",
		Tags:        []string{"case", "uppercase", "lowercase", "text"},
	},
	{
		ID:          "base64-encoder",
		Name:        "Base64 Encoder/Decoder",
		Description: "Encode plain text to base64 or decode it back",
		Path:        "/tools/base64-encoder",
		Category:    CategoryText,
		Icon:        "Binary",
		Tags:        []string{"base64", "encode", "decode", "text"},
	},
	{
		ID:          "lorem-ipsum-generator",
		Name:        "Lorem Ipsum Generator",
		Description: "Generate placeholder paragraphs, sentences or words",
		Path:        "/tools/lorem-ipsum-generator",
		Category:    CategoryText,
		Icon:        "AlignLeft",
		Tags:        []string{"lorem", "ipsum", "placeholder", "generator"},
	},
	{
		ID:          "text-diff",
		Name:        "Text Diff Checker",
		Description: "Highlight the differences between two versions of a text",
		Path:        "/tools/text-diff",
		Category:    CategoryText,
		Icon:        "GitCompare",
		Tags:        []string{"diff", "compare", "text", "changes"},
	},
	{
		ID:          "remove-duplicate-lines",
		Name:        "Remove Duplicate Lines",
		Description: "Strip repeated lines and optionally sort what is left",
		Path:        "/tools/remove-duplicate-lines",
		Category:    CategoryText,
		Icon:        "ListX",
		Tags:        []string{"duplicate", "lines", "dedupe", "text"},
	},

	// ═══════════════════════════════════════════════════════════════
	// SECURITY
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "password-generator",
		Name:        "Password Generator",
		Description: "Create strong random passwords with custom length and character sets",
		Path:        "/tools/password-generator",
		Category:    CategorySecurity,
		Icon:        "KeyRound",
		Tags:        []string{"password", "generator", "secure", "online", "security"},
		Featured:    true,
		IsFeatured:  true,
	},
	{
		ID:          "password-strength-checker",
		Name:        "Password Strength Checker",
		Description: "Estimate how long a password would resist a brute-force attack",
		Path:        "/tools/password-strength-checker",
		Category:    CategorySecurity,
		Icon:        "ShieldCheck",
		Tags:        []string{"password", "strength", "entropy", "security"},
	},
	{
		ID:          "aes-encryption",
		Name:        "AES Text Encryption",
		Description: "Encrypt and decrypt text with AES-GCM using the Web Crypto API",
		Path:        "/tools/aes-encryption",
		Category:    CategorySecurity,
		Icon:        "Lock",
		Tags:        []string{"aes", "encrypt", "decrypt", "crypto", "gcm"},
		IsNew:       true,
	},
	{
		ID:          "hash-generator",
		Name:        "Hash Generator",
		Description: "Compute SHA-1, SHA-256 and SHA-512 digests of any text",
		Path:        "/tools/hash-generator",
		Category:    CategorySecurity,
		Icon:        "Hash",
		Tags:        []string{"hash", "sha256", "digest", "checksum"},
	},
	{
		ID:          "jwt-decoder",
		Name:        "JWT Decoder",
		Description: "Inspect the header and payload of a JSON Web Token",
		Path:        "/tools/jwt-decoder",
		Category:    CategorySecurity,
		Icon:        "FileKey",
		Tags:        []string{"jwt", "token", "decode", "auth"},
	},

	// ═══════════════════════════════════════════════════════════════
	// DEVELOPMENT
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "json-formatter",
		Name:        "JSON Formatter",
		Description: "Pretty-print, minify and validate JSON documents",
		Path:        "/tools/json-formatter",
		Category:    CategoryDevelopment,
		Icon:        "Braces",
		Tags:        []string{"json", "format", "validate", "minify"},
		Featured:    true,
	},
	{
		ID:          "html-to-markdown",
		Name:        "HTML to Markdown",
		Description: "Convert HTML snippets into clean Markdown",
		Path:        "/tools/html-to-markdown",
		Category:    CategoryDevelopment,
		Icon:        "Code",
		Tags:        []string{"html", "markdown", "convert"},
	},
	{
		ID:          "markdown-to-html",
		Name:        "Markdown to HTML",
		Description: "Render Markdown into HTML markup you can paste anywhere",
		Path:        "/tools/markdown-to-html",
		Category:    CategoryDevelopment,
		Icon:        "FileCode",
		Tags:        []string{"markdown", "html", "convert"},
	},
	{
		ID:          "regex-tester",
		Name:        "Regex Tester",
		Description: "Test regular expressions against sample input with live highlighting",
		Path:        "/tools/regex-tester",
		Category:    CategoryDevelopment,
		Icon:        "Regex",
		Tags:        []string{"regex", "regular expression", "test", "match"},
	},
	{
		ID:          "url-encoder",
		Name:        "URL Encoder/Decoder",
		Description: "Percent-encode or decode query strings and URL components",
		Path:        "/tools/url-encoder",
		Category:    CategoryDevelopment,
		Icon:        "Link2",
		Tags:        []string{"url", "encode", "decode", "percent"},
	},
	{
		ID:          "uuid-generator",
		Name:        "UUID Generator",
		Description: "Generate random version 4 UUIDs in bulk",
		Path:        "/tools/uuid-generator",
		Category:    CategoryDevelopment,
		Icon:        "Fingerprint",
		Tags:        []string{"uuid", "guid", "generator", "random"},
	},
	{
		ID:          "timestamp-converter",
		Name:        "Unix Timestamp Converter",
		Description: "Convert between Unix epoch seconds and human readable dates",
		Path:        "/tools/timestamp-converter",
		Category:    CategoryDevelopment,
		Icon:        "Clock",
		Tags:        []string{"timestamp", "unix", "epoch", "date"},
	},

	// ═══════════════════════════════════════════════════════════════
	// DESIGN
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "color-picker",
		Name:        "Color Picker",
		Description: "Pick a colour and copy it as HEX, RGB or HSL",
		Path:        "/tools/color-picker",
		Category:    CategoryDesign,
		Icon:        "Pipette",
		Tags:        []string{"color", "hex", "rgb", "hsl", "picker"},
		Featured:    true,
	},
	{
		ID:          "gradient-generator",
		Name:        "CSS Gradient Generator",
		Description: "Design linear and radial gradients and copy the CSS",
		Path:        "/tools/gradient-generator",
		Category:    CategoryDesign,
		Icon:        "Palette",
		Tags:        []string{"gradient", "css", "color", "background"},
	},
	{
		ID:          "box-shadow-generator",
		Name:        "Box Shadow Generator",
		Description: "Tune offsets, blur and spread for a CSS box-shadow",
		Path:        "/tools/box-shadow-generator",
		Category:    CategoryDesign,
		Icon:        "Square",
		Tags:        []string{"shadow", "css", "box", "design"},
	},
	{
		ID:          "favicon-generator",
		Name:        "Favicon Generator",
		Description: "Render an icon image at every favicon size a site needs",
		Path:        "/tools/favicon-generator",
		Category:    CategoryDesign,
		Icon:        "Star",
		Tags:        []string{"favicon", "icon", "image", "website"},
		IsNew:       true,
	},

	// ═══════════════════════════════════════════════════════════════
	// CONTENT
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "online-notepad",
		Name:        "Online Notepad",
		Description: "Jot down notes that stay in local storage between visits",
		Path:        "/tools/online-notepad",
		Category:    CategoryContent,
		Icon:        "NotebookPen",
		Tags:        []string{"notes", "notepad", "write", "storage"},
		Featured:    true,
	},
	{
		ID:          "headline-analyzer",
		Name:        "Headline Analyzer",
		Description: "Score a headline for length, sentiment and power words",
		Path:        "/tools/headline-analyzer",
		Category:    CategoryContent,
		Icon:        "Heading",
		Tags:        []string{"headline", "title", "copywriting", "content"},
	},
	{
		ID:          "readability-checker",
		Name:        "Readability Checker",
		Description: "Measure Flesch reading ease and grade level of your writing",
		Path:        "/tools/readability-checker",
		Category:    CategoryContent,
		Icon:        "BookOpen",
		Tags:        []string{"readability", "flesch", "writing", "content"},
	},

	// ═══════════════════════════════════════════════════════════════
	// MISCELLANEOUS
	// ═══════════════════════════════════════════════════════════════
	{
		ID:          "random-number-generator",
		Name:        "Random Number Generator",
		Description: "Draw random integers within a range, with or without repeats",
		Path:        "/tools/random-number-generator",
		Category:    CategoryMiscellaneous,
		Icon:        "Dices",
		Tags:        []string{"random", "number", "generator", "dice"},
	},
	{
		ID:          "coin-flip",
		Name:        "Coin Flip",
		Description: "Flip a virtual coin and keep a running tally",
		Path:        "/tools/coin-flip",
		Category:    CategoryMiscellaneous,
		Icon:        "Coins",
		Tags:        []string{"coin", "flip", "random", "heads", "tails"},
	},
	{
		ID:          "typing-speed-test",
		Name:        "Typing Speed Test",
		Description: "Measure words per minute and accuracy over a timed passage",
		Path:        "/tools/typing-speed-test",
		Category:    CategoryMiscellaneous,
		Icon:        "Keyboard",
		Tags:        []string{"typing", "speed", "wpm", "test"},
	},
}
