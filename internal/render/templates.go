package render

import (
	"html/template"
	"strings"

	"github.com/Belphemur/ShowFinder/internal/models"
)

var (
	showTemplate = template.Must(template.New("show").Parse(
		`<div data-show-id="{{.ID}}" class="Show col-md-12 col-lg-6 mb-4">
  <div class="media">
    <img src="{{.Image}}" alt="{{.Name}}" class="w-25 mr-3">
    <div class="media-body">
      <h5 class="text-primary">{{.Name}}</h5>
      <div><small>{{.Summary}}</small></div>
      <button class="btn btn-outline-light btn-sm Show-getEpisodes">Episodes</button>
    </div>
  </div>
</div>`))

	episodeTemplate = template.Must(template.New("episode").Parse(
		`<li data-episode-id="{{.ID}}">{{.Label}}</li>`))
)

// showView is the template data for one show; Summary has already been sanitised.
type showView struct {
	ID      int
	Name    string
	Image   string
	Summary template.HTML
}

func showMarkup(show models.Show) (string, error) {
	var sb strings.Builder
	err := showTemplate.Execute(&sb, showView{
		ID:      show.ID,
		Name:    show.Name,
		Image:   show.Image,
		Summary: template.HTML(SanitizeSummary(show.Summary)),
	})
	return sb.String(), err
}

func episodeMarkup(episode models.Episode) (string, error) {
	var sb strings.Builder
	err := episodeTemplate.Execute(&sb, episode)
	return sb.String(), err
}
