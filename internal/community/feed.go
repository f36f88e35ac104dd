package community

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCreator is returned when following a name that is not in the feed.
var ErrUnknownCreator = errors.New("unknown creator")

type Creator struct {
	Name      string `json:"name"`
	Followers string `json:"followers"`
	Avatar    string `json:"avatar"`
	Status    string `json:"status"`
}

type PollOption struct {
	Option     string `json:"option"`
	VoteShare  int    `json:"voteShare"`
	VoteString string `json:"votes"`
}

type Poll struct {
	Author   string       `json:"author"`
	Posted   string       `json:"posted"`
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
	Likes    int          `json:"likes"`
	Comments int          `json:"comments"`
}

type MediaPost struct {
	Author   string `json:"author"`
	Posted   string `json:"posted"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
	Likes    string `json:"likes"`
	Comments int    `json:"comments"`
}

type Activity struct {
	User   string `json:"user"`
	Action string `json:"action"`
	Ago    string `json:"ago"`
}

// Feed is the static community page content.
type Feed struct {
	Creators []Creator  `json:"creators"`
	Poll     Poll       `json:"poll"`
	Media    MediaPost  `json:"media"`
	Activity []Activity `json:"activity"`
}

func pollOption(option string, share int) PollOption {
	return PollOption{Option: option, VoteShare: share, VoteString: fmt.Sprintf("%d%%", share)}
}

// DefaultFeed returns a fresh copy of the built-in mock feed.
func DefaultFeed() Feed {
	return Feed{
		Creators: []Creator{
			{Name: "PixelWiz", Followers: "12.4K", Avatar: "P", Status: "Online"},
			{Name: "CyberNode", Followers: "8.2K", Avatar: "C", Status: "In Engine"},
			{Name: "RetroGamer", Followers: "5.1K", Avatar: "R", Status: "Modeling"},
		},
		Poll: Poll{
			Author:   "PixelWiz",
			Posted:   "2 hours ago",
			Question: "Which art style should I use for my next rogue-like?",
			Options: []PollOption{
				pollOption("Cyberpunk Pixel Art", 45),
				pollOption("Hand-drawn Ghibli", 30),
				pollOption("Minimalist Vector", 25),
			},
			Likes:    234,
			Comments: 45,
		},
		Media: MediaPost{
			Author:   "CyberNode",
			Posted:   "5 hours ago",
			Text:     "Testing the new volumetric lighting in the tech demo. Thoughts?",
			ImageURL: "https://images.unsplash.com/photo-1614850523296-d8c1af93d400?q=80&w=1000",
			Likes:    "1.2K",
			Comments: 89,
		},
		Activity: []Activity{
			{User: "TesterA", Action: "voted on PixelWiz poll", Ago: "2m"},
			{User: "DevX", Action: "posted a new tech demo", Ago: "15m"},
			{User: "Player1", Action: "reached Wave 50 in Neon Jump", Ago: "22m"},
		},
	}
}

// FollowAck is the acknowledgement shown after following a creator.
type FollowAck struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Follow acknowledges following name (case-insensitive). Nothing is stored.
func (f Feed) Follow(name string) (FollowAck, error) {
	for _, c := range f.Creators {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return FollowAck{
				Title:       "Followed " + c.Name,
				Description: "You'll see their posts in your feed.",
			}, nil
		}
	}
	return FollowAck{}, fmt.Errorf("%w: %q", ErrUnknownCreator, name)
}
