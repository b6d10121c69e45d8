package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/store"
	"github.com/YOKO3227/Webtoon/internal/utils"
	"github.com/YOKO3227/Webtoon/models"
)

type overlayService struct {
	buckets store.BucketResolver

	logger *logger.Logger
}

// NewOverlayService returns the [OverlayService] reading layouts, images and
// fonts from the buckets known to resolver.
func NewOverlayService(resolver store.BucketResolver, logger *logger.Logger) OverlayService {
	return &overlayService{
		buckets: resolver,
		logger:  logger,
	}
}

func (s *overlayService) Render(ctx context.Context, req models.RenderRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	bucket, binding, ok := s.buckets.Resolve(req.Bucket)
	if !ok {
		return models.Document{}, fmt.Errorf("%w: '%s'", ErrBucketNotBound, req.Bucket)
	}
	log.Debug().Str("bucket", req.Bucket).Str("binding", binding).Msg("bucket resolved")

	configObj, imageObj, err := fetchObjects(ctx, bucket, req)
	if err != nil {
		return models.Document{}, err
	}

	layout, imageData, err := materialize(ctx, configObj, imageObj)
	if err != nil {
		return models.Document{}, err
	}

	width, height := canvasSize(ctx, layout.ImageSize, imageData)
	imageType := imageTypeOf(req.ImageKey, imageObj.ContentType())

	fonts := resolveFonts(ctx, bucket, req, layout)

	text, err := renderTextLayer(ctx, layout, req.Query, fonts.customFontLoaded)
	if err != nil {
		return models.Document{}, err
	}

	tmpl, contentType := selectDocument(imageType, req.Query.Get("format"))
	body, err := renderDocument(tmpl, documentData{
		Width:      formatNumber(width),
		Height:     formatNumber(height),
		FontStyles: fonts.css,
		ImageHref:  "data:" + imageType + ";base64," + utils.EncodeBase64(imageData),
		Text:       text,
	})
	if err != nil {
		log.Err(err).Str("func", "*overlayService.Render").Msg("error executing document template")
		return models.Document{}, fmt.Errorf("error rendering document: %w", err)
	}

	return models.Document{
		ContentType: contentType,
		Body:        body,
		ETag:        utils.ETag(body),
	}, nil
}

// fetchObjects gets the config and image handles concurrently. Absence is
// not a failure of the group, so both lookups complete and a missing config
// is reported before a missing image. Any other error cancels the sibling.
func fetchObjects(ctx context.Context, bucket store.Bucket, req models.RenderRequest) (store.Object, store.Object, error) {
	var configObj, imageObj store.Object
	configKey := req.ConfigKey()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		configObj, err = getOptional(gCtx, bucket, configKey)
		return err
	})
	g.Go(func() error {
		var err error
		imageObj, err = getOptional(gCtx, bucket, req.ImageKey)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if configObj == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configKey)
	}
	if imageObj == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrImageNotFound, req.ImageKey)
	}

	return configObj, imageObj, nil
}

// getOptional returns a nil object without error when key is absent.
func getOptional(ctx context.Context, bucket store.Bucket, key string) (store.Object, error) {
	obj, err := bucket.Get(ctx, key)
	if errors.Is(err, store.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", key, err)
	}
	return obj, nil
}

// materialize parses the layout config and reads the image bytes
// concurrently, failing on the first error.
func materialize(ctx context.Context, configObj, imageObj store.Object) (models.LayoutConfig, []byte, error) {
	var (
		layout    models.LayoutConfig
		imageData []byte
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := configObj.ReadAll(gCtx)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", configObj.Key(), err)
		}
		if err = json.Unmarshal(raw, &layout); err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidLayoutConfig, configObj.Key(), err)
		}
		return nil
	})
	g.Go(func() error {
		data, err := imageObj.ReadAll(gCtx)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", imageObj.Key(), err)
		}
		imageData = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.LayoutConfig{}, nil, err
	}

	return layout, imageData, nil
}
