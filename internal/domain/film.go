package domain

type Film struct {
	ID               string
	Name             string
	Description      string
	Genre            string
	Rating           float64
	ScoresCount      int
	Released         int
	RunTime          int
	Director         string
	Starring         []string
	PosterImage      string
	PreviewImage     string
	BackgroundImage  string
	BackgroundColor  string
	VideoLink        string
	PreviewVideoLink string
	IsFavorite       bool
}

// Upload is a file picked by the user, sent as a multipart form part.
type Upload struct {
	Filename string
	Content  []byte
}

// FormFile is an Upload bound to the form field the backend expects.
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

type NewFilm struct {
	Name             string
	Description      string
	Genre            string
	Released         int
	RunTime          int
	Director         string
	Starring         []string
	PreviewImage     string
	BackgroundColor  string
	VideoLink        string
	PreviewVideoLink string
	PosterImage      *Upload
	BackgroundImage  *Upload
}

// FilmEdit carries an edited film and, optionally, replacement images.
type FilmEdit struct {
	Film            Film
	PosterImage     *Upload
	BackgroundImage *Upload
}

// FavoriteStatus selects whether SetFavorite adds or removes a film.
type FavoriteStatus int

const (
	FavoriteRemove FavoriteStatus = iota
	FavoriteAdd
)

func (s FavoriteStatus) String() string {
	switch s {
	case FavoriteAdd:
		return "add"
	case FavoriteRemove:
		return "remove"
	default:
		return "unknown"
	}
}
