package dto

type FilmDto struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Genre            string   `json:"genre"`
	Rating           float64  `json:"rating"`
	ScoresCount      int      `json:"scoresCount"`
	Released         int      `json:"released"`
	RunTime          int      `json:"runTime"`
	Director         string   `json:"director"`
	Starring         []string `json:"starring"`
	PosterImage      string   `json:"posterImage"`
	PreviewImage     string   `json:"previewImage"`
	BackgroundImage  string   `json:"backgroundImage"`
	BackgroundColor  string   `json:"backgroundColor"`
	VideoLink        string   `json:"videoLink"`
	PreviewVideoLink string   `json:"previewVideoLink"`
	IsFavorite       bool     `json:"isFavorite"`
}

type CreateFilmDto struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Genre            string   `json:"genre"`
	Released         int      `json:"released"`
	RunTime          int      `json:"runTime"`
	Director         string   `json:"director"`
	Starring         []string `json:"starring"`
	PreviewImage     string   `json:"previewImage"`
	BackgroundColor  string   `json:"backgroundColor"`
	VideoLink        string   `json:"videoLink"`
	PreviewVideoLink string   `json:"previewVideoLink"`
}

// UpdateFilmDto is a partial update: empty fields are left untouched by
// the backend. Images are replaced through the upload routes.
type UpdateFilmDto struct {
	Title            string   `json:"title,omitempty"`
	Description      string   `json:"description,omitempty"`
	Genre            string   `json:"genre,omitempty"`
	Released         int      `json:"released,omitempty"`
	RunTime          int      `json:"runTime,omitempty"`
	Director         string   `json:"director,omitempty"`
	Starring         []string `json:"starring,omitempty"`
	PreviewImage     string   `json:"previewImage,omitempty"`
	BackgroundColor  string   `json:"backgroundColor,omitempty"`
	VideoLink        string   `json:"videoLink,omitempty"`
	PreviewVideoLink string   `json:"previewVideoLink,omitempty"`
}
