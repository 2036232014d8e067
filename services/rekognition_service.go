package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// genericFoodLabels are too vague to use as a dish name.
var genericFoodLabels = map[string]bool{
	"Food":    true,
	"Meal":    true,
	"Dish":    true,
	"Plate":   true,
	"Cuisine": true,
	"Lunch":   true,
	"Dinner":  true,
	"Brunch":  true,
}

// RecognizeDish detects labels on a base64-encoded photo and picks the most
// specific one as a dish name suggestion. The user still confirms or edits
// before logging.
func (r *RekognitionService) RecognizeDish(base64Img string) (string, []string, error) {
	idx := len("data:image/jpeg;base64,")
	if idx > len(base64Img) || !strings.HasPrefix(base64Img, "data:image") {
		return "", nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx:])
	if err != nil {
		return "", nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return "", nil, err
	}

	var labels []string
	dish := ""
	for _, l := range out.Labels {
		name := aws.ToString(l.Name)
		labels = append(labels, name)
		if dish == "" && !genericFoodLabels[name] {
			dish = name
		}
	}
	return dish, labels, nil
}
