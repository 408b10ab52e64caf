// Package catalog holds the static table of websites sitescout monitors.
//
// The catalog is compiled in and immutable: it is loaded once at process
// start and never mutated during a run. Traversal order is deterministic
// (declaration order of categories, then of sites within a category) so
// batches are stable from run to run.
package catalog

// Site is one monitored website.
type Site struct {
	// Name is the display name used as the report key within a category.
	Name string `json:"name"`

	// URL is the address the agent visits.
	URL string `json:"url"`

	// Category is the catalog section the site belongs to.
	Category string `json:"category"`
}

// entry is a name/URL pair inside a category, kept in declaration order.
type entry struct {
	name string
	url  string
}

// category is a named, ordered group of sites.
type category struct {
	name    string
	entries []entry
}

// websites is the full monitored catalog.
var websites = []category{
	{name: "Entertainment & Media", entries: []entry{
		{"Spotify", "https://open.spotify.com"},
		{"Snapchat", "https://www.snapchat.com"},
		{"Discord", "https://discord.com"},
		{"FuboTV", "https://www.fubo.tv"},
		{"Vimeo", "https://vimeo.com"},
	}},
	{name: "Gaming", entries: []entry{
		{"Pokémon Go", "https://pokemongolive.com"},
		{"Pokemon TCG", "https://www.pokemon.com/us/pokemon-tcg"},
		{"Phasmophobia", "https://store.steampowered.com/app/739630/Phasmophobia"},
		{"Rocket League", "https://www.rocketleague.com"},
		{"Roblox", "https://www.roblox.com"},
		{"Dragon Ball", "https://www.toei-animation.com/dragonball"},
		{"Marvel Contest of Champions", "https://playcontestofchampions.com"},
	}},
	{name: "AI & Technology Platforms", entries: []entry{
		{"CharacterAI", "https://character.ai"},
		{"Anthropic", "https://www.anthropic.com"},
		{"OpenAI", "https://openai.com"},
		{"Cursor", "https://www.cursor.com"},
		{"Google Gemini", "https://gemini.google.com"},
	}},
	{name: "Google Services", entries: []entry{
		{"Google", "https://www.google.com"},
		{"Google Cloud", "https://cloud.google.com"},
		{"Google Meet", "https://meet.google.com"},
		{"Gmail", "https://gmail.com"},
		{"Google Nest", "https://store.google.com/category/connected_home"},
		{"Google Maps", "https://maps.google.com"},
	}},
	{name: "Cloud & Infrastructure", entries: []entry{
		{"Amazon Web Services", "https://aws.amazon.com"},
		{"Microsoft Azure", "https://azure.microsoft.com"},
		{"Microsoft 365", "https://www.microsoft365.com"},
		{"Cloudflare", "https://www.cloudflare.com"},
		{"Box", "https://www.box.com"},
		{"NPM", "https://www.npmjs.com"},
	}},
	{name: "E-commerce & Business", entries: []entry{
		{"Etsy", "https://www.etsy.com"},
		{"Shopify", "https://www.shopify.com"},
		{"DoorDash", "https://www.doordash.com"},
		{"Wayfair", "https://www.wayfair.com"},
	}},
	{name: "Business Tools & Services", entries: []entry{
		{"UPS", "https://www.ups.com"},
		{"USPS", "https://www.usps.com"},
		{"T-Mobile", "https://www.t-mobile.com"},
		{"Mailchimp", "https://mailchimp.com"},
		{"Dialpad", "https://www.dialpad.com"},
		{"Zoom", "https://zoom.us"},
		{"Calendly", "https://calendly.com"},
	}},
	{name: "Smart Home & IoT", entries: []entry{
		{"Ecobee", "https://www.ecobee.com"},
		{"Fitbit", "https://www.fitbit.com"},
	}},
	{name: "Specialized Business Software", entries: []entry{
		{"HighLevel", "https://www.gohighlevel.com"},
		{"Clover POS Systems", "https://www.clover.com"},
		{"Procore", "https://www.procore.com"},
	}},
	{name: "Education & Development", entries: []entry{
		{"Khan Academy", "https://www.khanacademy.org"},
		{"DeviantArt", "https://www.deviantart.com"},
	}},
	{name: "Finance & Banking", entries: []entry{
		{"Dave", "https://dave.com"},
	}},
}

// Categories returns the category names in declaration order.
func Categories() []string {
	names := make([]string, 0, len(websites))
	for _, c := range websites {
		names = append(names, c.name)
	}
	return names
}

// Sites returns every monitored site in deterministic catalog order.
// The returned slice is freshly allocated; callers may not mutate the catalog
// through it.
func Sites() []Site {
	sites := make([]Site, 0, Len())
	for _, c := range websites {
		for _, e := range c.entries {
			sites = append(sites, Site{Name: e.name, URL: e.url, Category: c.name})
		}
	}
	return sites
}

// Len returns the total number of monitored sites.
func Len() int {
	n := 0
	for _, c := range websites {
		n += len(c.entries)
	}
	return n
}
