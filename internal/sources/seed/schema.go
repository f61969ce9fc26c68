package seed

// Entry is a single bookmark in the seed file.
type Entry struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// UserBookmarks groups the bookmarks of one user.
type UserBookmarks struct {
	User      string  `yaml:"user"`
	Bookmarks []Entry `yaml:"bookmarks"`
}

// File is the root structure of the seed YAML:
//
//	- user: alice
//	  bookmarks:
//	    - name: Go blog
//	      url: https://go.dev/blog/
type File []UserBookmarks
